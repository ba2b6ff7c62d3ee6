package controllers

import (
	"errors"
	"net/http"

	"github.com/divi1127/BackendDeepF/internal/constants"
	"github.com/divi1127/BackendDeepF/internal/dtos"
	"github.com/divi1127/BackendDeepF/internal/services"
	"github.com/divi1127/BackendDeepF/internal/uploads"
	"github.com/divi1127/BackendDeepF/internal/utils"
)

type MentorsController struct {
	mentorService services.MentorService
	resumeStore   *uploads.Store
}

func NewMentorsController(ms services.MentorService, store *uploads.Store) *MentorsController {
	return &MentorsController{mentorService: ms, resumeStore: store}
}

// ----------------------------------------------------------------
// GET /api/mentors
// ----------------------------------------------------------------
func (c *MentorsController) ListMentorsHandler(w http.ResponseWriter, r *http.Request) {
	mentors, err := c.mentorService.ListMentors(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to fetch mentors", nil, err,
		)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, mentors)
}

// ----------------------------------------------------------------
// POST /api/mentor-apply  (multipart form with a `resume` file)
// ----------------------------------------------------------------
func (c *MentorsController) ApplyHandler(w http.ResponseWriter, r *http.Request) {
	// The cap covers the resume plus multipart overhead. Parse the form
	// up front: FormValue would swallow the limit error and report the
	// oversized body as missing fields.
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxResumeBytes)
	if err := r.ParseMultipartForm(constants.MaxResumeBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			utils.RespondErrorWithCode(
				w, http.StatusBadRequest, utils.ErrCodeFileTooLarge, "Resume exceeds the 10 MiB limit", nil,
			)
			return
		}
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid multipart form", nil, err,
		)
		return
	}

	req := dtos.MentorApplyRequest{
		Name:       r.FormValue("name"),
		Email:      r.FormValue("email"),
		Phone:      r.FormValue("phone"),
		Expertise:  r.FormValue("expertise"),
		Experience: r.FormValue("experience"),
		Message:    r.FormValue("message"),
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation,
			"name, email, phone, expertise and experience are required", nil, err,
		)
		return
	}

	filename, err := c.resumeStore.SaveResume(r, "resume")
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrMissingFile):
			utils.RespondErrorWithCode(
				w, http.StatusBadRequest, utils.ErrCodeMissingFile, "Resume file is required", nil,
			)
		case errors.Is(err, utils.ErrInvalidFileType):
			utils.RespondErrorWithCode(
				w, http.StatusBadRequest, utils.ErrCodeInvalidFileType,
				"Only .pdf, .doc and .docx resumes are accepted", nil,
			)
		case errors.Is(err, utils.ErrFileTooLarge):
			utils.RespondErrorWithCode(
				w, http.StatusBadRequest, utils.ErrCodeFileTooLarge, "Resume exceeds the 10 MiB limit", nil,
			)
		default:
			utils.RespondErrorWithCode(
				w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to store resume", nil, err,
			)
		}
		return
	}

	id, err := c.mentorService.Apply(r.Context(), req, filename)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to submit application", nil, err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.MentorApplyResponse{
		Message: "Application submitted",
		ID:      id,
		FileURL: uploads.URLFor(filename),
	})
}
