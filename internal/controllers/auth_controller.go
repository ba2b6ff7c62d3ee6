package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/divi1127/BackendDeepF/internal/dtos"
	"github.com/divi1127/BackendDeepF/internal/services"
	"github.com/divi1127/BackendDeepF/internal/utils"
)

type AuthController struct {
	authService services.AuthService
}

func NewAuthController(as services.AuthService) *AuthController {
	return &AuthController{authService: as}
}

// ----------------------------------------------------------------
// POST /api/signup
// ----------------------------------------------------------------
func (c *AuthController) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "name, email and password are required", nil, err,
		)
		return
	}

	if err := c.authService.Signup(r.Context(), req); err != nil {
		if errors.Is(err, utils.ErrEmailExists) {
			utils.RespondErrorWithCode(
				w, http.StatusBadRequest, utils.ErrCodeConflict, "User already exists", nil,
			)
			return
		}
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to sign up", nil, err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.MessageResponse{Message: "Signup successful"})
}

// ----------------------------------------------------------------
// POST /api/login
// ----------------------------------------------------------------
func (c *AuthController) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "email and password are required", nil, err,
		)
		return
	}

	if err := c.authService.Login(r.Context(), req); err != nil {
		if errors.Is(err, utils.ErrInvalidCredentials) {
			utils.RespondErrorWithCode(
				w, http.StatusBadRequest, utils.ErrCodeInvalidCredentials, "Invalid email or password", nil,
			)
			return
		}
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to log in", nil, err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "OTP sent to your email"})
}

// ----------------------------------------------------------------
// POST /api/verify-otp
// ----------------------------------------------------------------
func (c *AuthController) VerifyOTPHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "email and a 6-digit otp are required", nil, err,
		)
		return
	}

	token, user, err := c.authService.VerifyOTP(r.Context(), req)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidOTP) {
			utils.RespondErrorWithCode(
				w, http.StatusBadRequest, utils.ErrCodeInvalidOTP, "Invalid or expired OTP", nil,
			)
			return
		}
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to verify OTP", nil, err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.VerifyOTPResponse{
		Message: "Login successful",
		Token:   token,
		User:    user,
	})
}

// ----------------------------------------------------------------
// GET /api/users  (requires Bearer token)
// ----------------------------------------------------------------
func (c *AuthController) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := c.authService.ListUsers(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to fetch users", nil, err,
		)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, users)
}
