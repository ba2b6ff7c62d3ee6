package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/divi1127/BackendDeepF/internal/dtos"
	"github.com/divi1127/BackendDeepF/internal/services"
	"github.com/divi1127/BackendDeepF/internal/utils"
)

var validate = validator.New()

type EnrollmentsController struct {
	enrollService services.EnrollmentService
}

func NewEnrollmentsController(es services.EnrollmentService) *EnrollmentsController {
	return &EnrollmentsController{enrollService: es}
}

// ----------------------------------------------------------------
// POST /api/enroll
// ----------------------------------------------------------------
func (c *EnrollmentsController) EnrollHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.EnrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "name, email, phone and courseId are required", nil, err,
		)
		return
	}

	id, err := c.enrollService.Enroll(r.Context(), req)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidPhone) {
			utils.RespondErrorWithCode(
				w, http.StatusBadRequest, utils.ErrCodeValidation, "Phone number is not valid", nil,
			)
			return
		}
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to enroll", nil, err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.EnrollResponse{
		Message:  "Enrollment successful",
		InsertID: id,
	})
}
