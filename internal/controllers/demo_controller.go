package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/divi1127/BackendDeepF/internal/dtos"
	"github.com/divi1127/BackendDeepF/internal/services"
	"github.com/divi1127/BackendDeepF/internal/utils"
)

type DemoController struct {
	demoService services.DemoService
}

func NewDemoController(ds services.DemoService) *DemoController {
	return &DemoController{demoService: ds}
}

// ----------------------------------------------------------------
// POST /api/demo-request
// ----------------------------------------------------------------
func (c *DemoController) RequestDemoHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.DemoRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "name, email, phone and course are required", nil, err,
		)
		return
	}

	id, err := c.demoService.RequestDemo(r.Context(), req)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidPhone) {
			utils.RespondErrorWithCode(
				w, http.StatusBadRequest, utils.ErrCodeValidation, "Phone number is not valid", nil,
			)
			return
		}
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to submit demo request", nil, err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.DemoRequestResponse{
		Message: "Demo request received",
		ID:      id,
	})
}
