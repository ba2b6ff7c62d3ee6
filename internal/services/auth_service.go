package services

import (
	"context"
	"time"

	"github.com/divi1127/BackendDeepF/internal/constants"
	"github.com/divi1127/BackendDeepF/internal/dtos"
	"github.com/divi1127/BackendDeepF/internal/middleware"
	"github.com/divi1127/BackendDeepF/internal/models"
	"github.com/divi1127/BackendDeepF/internal/repositories"
	"github.com/divi1127/BackendDeepF/internal/utils"
)

/*
AuthService implements the two-step OTP login flow plus signup:

 1. Login checks the credentials, stores a 6-digit code with a
    10-minute expiry and emails it.
 2. VerifyOTP consumes any stored non-expired matching code, deletes all
    codes for the email and mints an access token.

Uniqueness of users.email is enforced by the store; the repository
surfaces a duplicate as utils.ErrEmailExists.
*/
type AuthService interface {
	Signup(ctx context.Context, req dtos.SignupRequest) error
	Login(ctx context.Context, req dtos.LoginRequest) error
	VerifyOTP(ctx context.Context, req dtos.VerifyOTPRequest) (string, *models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}

type authService struct {
	userRepo  repositories.UserRepository
	otpRepo   repositories.UserOTPRepository
	notifier  NotificationService
	jwtSecret []byte
}

func NewAuthService(
	userRepo repositories.UserRepository,
	otpRepo repositories.UserOTPRepository,
	notifier NotificationService,
	jwtSecret []byte,
) AuthService {
	return &authService{
		userRepo:  userRepo,
		otpRepo:   otpRepo,
		notifier:  notifier,
		jwtSecret: jwtSecret,
	}
}

func (s *authService) Signup(ctx context.Context, req dtos.SignupRequest) error {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return err
	}
	_, err = s.userRepo.Create(ctx, &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	})
	return err
}

func (s *authService) Login(ctx context.Context, req dtos.LoginRequest) error {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return utils.ErrInvalidCredentials
	}

	code := utils.RandomNumericString(constants.OTPLength)
	expiresAt := time.Now().Add(constants.OTPTTL)
	if err := s.otpRepo.CreateCode(ctx, req.Email, code, expiresAt); err != nil {
		return err
	}

	s.notifier.SendOTP(req.Email, code)
	return nil
}

func (s *authService) VerifyOTP(ctx context.Context, req dtos.VerifyOTPRequest) (string, *models.User, error) {
	rec, err := s.otpRepo.GetValidCode(ctx, req.Email, req.OTP)
	if err != nil {
		return "", nil, err
	}
	if rec == nil {
		return "", nil, utils.ErrInvalidOTP
	}

	if err := s.otpRepo.DeleteAllForEmail(ctx, req.Email); err != nil {
		return "", nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, utils.ErrInvalidOTP
	}

	token, err := middleware.IssueToken(s.jwtSecret, user.ID, user.Email, constants.AccessTokenTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *authService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.ListAll(ctx)
}
