package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/divi1127/BackendDeepF/internal/services"
	"github.com/divi1127/BackendDeepF/internal/utils"
)

type CoursesController struct {
	courseService services.CourseService
}

func NewCoursesController(cs services.CourseService) *CoursesController {
	return &CoursesController{courseService: cs}
}

// ----------------------------------------------------------------
// GET /api/courses
// ----------------------------------------------------------------
func (c *CoursesController) ListCoursesHandler(w http.ResponseWriter, r *http.Request) {
	courses, err := c.courseService.ListCourses(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(
			w,
			http.StatusInternalServerError,
			utils.ErrCodeInternal,
			"Failed to fetch courses",
			nil,
			err,
		)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, courses)
}

// ----------------------------------------------------------------
// GET /api/courses/{id}
// ----------------------------------------------------------------
func (c *CoursesController) GetCourseHandler(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondErrorWithCode(
			w,
			http.StatusBadRequest,
			utils.ErrCodeInvalidPayload,
			"Course id must be numeric",
			nil,
		)
		return
	}

	course, err := c.courseService.GetCourse(r.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrCourseNotFound) {
			utils.RespondErrorWithCode(
				w,
				http.StatusNotFound,
				utils.ErrCodeNotFound,
				"Course not found",
				nil,
			)
			return
		}
		utils.RespondErrorWithCode(
			w,
			http.StatusInternalServerError,
			utils.ErrCodeInternal,
			"Failed to fetch course",
			nil,
			err,
		)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, course)
}
