package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/divi1127/BackendDeepF/internal/dtos"
	"github.com/divi1127/BackendDeepF/internal/services"
	"github.com/divi1127/BackendDeepF/internal/utils"
)

type TestimonialsController struct {
	testimonialService services.TestimonialService
}

func NewTestimonialsController(ts services.TestimonialService) *TestimonialsController {
	return &TestimonialsController{testimonialService: ts}
}

// ----------------------------------------------------------------
// GET /api/testimonials
// ----------------------------------------------------------------
func (c *TestimonialsController) ListTestimonialsHandler(w http.ResponseWriter, r *http.Request) {
	testimonials, err := c.testimonialService.ListTestimonials(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to fetch testimonials", nil, err,
		)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, testimonials)
}

// ----------------------------------------------------------------
// POST /api/testimonials
// ----------------------------------------------------------------
func (c *TestimonialsController) CreateTestimonialHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.TestimonialCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "name, role and review are required", nil, err,
		)
		return
	}

	id, err := c.testimonialService.CreateTestimonial(r.Context(), req)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to create testimonial", nil, err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.TestimonialCreateResponse{
		Message: "Testimonial created",
		ID:      id,
	})
}
