package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/divi1127/BackendDeepF/internal/dtos"
	"github.com/divi1127/BackendDeepF/internal/services"
	"github.com/divi1127/BackendDeepF/internal/utils"
)

type WorkshopsController struct {
	workshopService services.WorkshopService
}

func NewWorkshopsController(ws services.WorkshopService) *WorkshopsController {
	return &WorkshopsController{workshopService: ws}
}

// ----------------------------------------------------------------
// GET /api/workshops
// ----------------------------------------------------------------
func (c *WorkshopsController) ListWorkshopsHandler(w http.ResponseWriter, r *http.Request) {
	workshops, err := c.workshopService.ListWorkshops(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to fetch workshops", nil, err,
		)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, workshops)
}

// ----------------------------------------------------------------
// POST /api/register
// ----------------------------------------------------------------
func (c *WorkshopsController) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation,
			"name, email, phone, currentStatus and workshop are required", nil, err,
		)
		return
	}

	id, err := c.workshopService.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidPhone) {
			utils.RespondErrorWithCode(
				w, http.StatusBadRequest, utils.ErrCodeValidation, "Phone number is not valid", nil,
			)
			return
		}
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to register", nil, err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.RegisterResponse{
		Message:  "Registration successful",
		InsertID: id,
	})
}
