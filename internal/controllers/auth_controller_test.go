package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divi1127/BackendDeepF/internal/dtos"
	"github.com/divi1127/BackendDeepF/internal/models"
	"github.com/divi1127/BackendDeepF/internal/utils"
)

type fakeAuthService struct {
	signupErr error
	loginErr  error
	verifyErr error

	token string
	user  *models.User
}

func (f *fakeAuthService) Signup(_ context.Context, _ dtos.SignupRequest) error { return f.signupErr }
func (f *fakeAuthService) Login(_ context.Context, _ dtos.LoginRequest) error   { return f.loginErr }
func (f *fakeAuthService) VerifyOTP(_ context.Context, _ dtos.VerifyOTPRequest) (string, *models.User, error) {
	return f.token, f.user, f.verifyErr
}
func (f *fakeAuthService) ListUsers(_ context.Context) ([]*models.User, error) {
	return []*models.User{f.user}, nil
}

func TestSignupHandler(t *testing.T) {
	ctrl := NewAuthController(&fakeAuthService{})

	rec := httptest.NewRecorder()
	ctrl.SignupHandler(rec, jsonRequest(t, http.MethodPost, "/api/signup", dtos.SignupRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "hunter22",
	}))

	require.Equal(t, http.StatusCreated, rec.Code)
	var got dtos.MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "Signup successful", got.Message)
}

func TestSignupHandlerMissingFields(t *testing.T) {
	ctrl := NewAuthController(&fakeAuthService{})

	rec := httptest.NewRecorder()
	ctrl.SignupHandler(rec, jsonRequest(t, http.MethodPost, "/api/signup", dtos.SignupRequest{
		Email: "asha@example.com",
	}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, utils.ErrCodeValidation, decodeError(t, rec).Code)
}

func TestSignupHandlerShortPassword(t *testing.T) {
	ctrl := NewAuthController(&fakeAuthService{})

	rec := httptest.NewRecorder()
	ctrl.SignupHandler(rec, jsonRequest(t, http.MethodPost, "/api/signup", dtos.SignupRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "short",
	}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, utils.ErrCodeValidation, decodeError(t, rec).Code)
}

func TestSignupHandlerDuplicateEmail(t *testing.T) {
	ctrl := NewAuthController(&fakeAuthService{signupErr: utils.ErrEmailExists})

	rec := httptest.NewRecorder()
	ctrl.SignupHandler(rec, jsonRequest(t, http.MethodPost, "/api/signup", dtos.SignupRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "hunter22",
	}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, utils.ErrCodeConflict, body.Code)
	assert.Equal(t, "User already exists", body.Message)
}

func TestLoginHandler(t *testing.T) {
	ctrl := NewAuthController(&fakeAuthService{})

	rec := httptest.NewRecorder()
	ctrl.LoginHandler(rec, jsonRequest(t, http.MethodPost, "/api/login", dtos.LoginRequest{
		Email:    "asha@example.com",
		Password: "hunter22",
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	var got dtos.MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "OTP sent to your email", got.Message)
}

func TestLoginHandlerBadCredentials(t *testing.T) {
	ctrl := NewAuthController(&fakeAuthService{loginErr: utils.ErrInvalidCredentials})

	rec := httptest.NewRecorder()
	ctrl.LoginHandler(rec, jsonRequest(t, http.MethodPost, "/api/login", dtos.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong",
	}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, utils.ErrCodeInvalidCredentials, decodeError(t, rec).Code)
}

func TestLoginHandlerInvalidJSON(t *testing.T) {
	ctrl := NewAuthController(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	rec := httptest.NewRecorder()
	ctrl.LoginHandler(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, utils.ErrCodeInvalidPayload, decodeError(t, rec).Code)
}

func TestVerifyOTPHandler(t *testing.T) {
	user := &models.User{ID: 1, Name: "Asha", Email: "asha@example.com"}
	ctrl := NewAuthController(&fakeAuthService{token: "signed-token", user: user})

	rec := httptest.NewRecorder()
	ctrl.VerifyOTPHandler(rec, jsonRequest(t, http.MethodPost, "/api/verify-otp", dtos.VerifyOTPRequest{
		Email: "asha@example.com",
		OTP:   "123456",
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	var got dtos.VerifyOTPResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "Login successful", got.Message)
	assert.Equal(t, "signed-token", got.Token)
	require.NotNil(t, got.User)
	assert.Equal(t, "asha@example.com", got.User.Email)
}

func TestVerifyOTPHandlerRejectsShortOTP(t *testing.T) {
	ctrl := NewAuthController(&fakeAuthService{})

	rec := httptest.NewRecorder()
	ctrl.VerifyOTPHandler(rec, jsonRequest(t, http.MethodPost, "/api/verify-otp", dtos.VerifyOTPRequest{
		Email: "asha@example.com",
		OTP:   "123",
	}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, utils.ErrCodeValidation, decodeError(t, rec).Code)
}

func TestVerifyOTPHandlerInvalidCode(t *testing.T) {
	ctrl := NewAuthController(&fakeAuthService{verifyErr: utils.ErrInvalidOTP})

	rec := httptest.NewRecorder()
	ctrl.VerifyOTPHandler(rec, jsonRequest(t, http.MethodPost, "/api/verify-otp", dtos.VerifyOTPRequest{
		Email: "asha@example.com",
		OTP:   "123456",
	}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, utils.ErrCodeInvalidOTP, decodeError(t, rec).Code)
}

func TestListUsersHandler(t *testing.T) {
	user := &models.User{ID: 1, Name: "Asha", Email: "asha@example.com"}
	ctrl := NewAuthController(&fakeAuthService{user: user})

	rec := httptest.NewRecorder()
	ctrl.ListUsersHandler(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []*models.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "asha@example.com", got[0].Email)
}
