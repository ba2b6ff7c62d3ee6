package services

import (
	"context"

	twilio "github.com/twilio/twilio-go"

	"github.com/divi1127/BackendDeepF/internal/constants"
	"github.com/divi1127/BackendDeepF/internal/dtos"
	"github.com/divi1127/BackendDeepF/internal/models"
	"github.com/divi1127/BackendDeepF/internal/repositories"
	"github.com/divi1127/BackendDeepF/internal/utils"
)

type EnrollmentService interface {
	// Enroll inserts the enrollment and returns its id. Email delivery is
	// best-effort and never affects the result.
	Enroll(ctx context.Context, req dtos.EnrollRequest) (int64, error)
}

type enrollmentService struct {
	enrollRepo repositories.EnrollmentRepository
	notifier   NotificationService
	twClient   *twilio.RestClient
}

func NewEnrollmentService(
	enrollRepo repositories.EnrollmentRepository,
	notifier NotificationService,
	twClient *twilio.RestClient,
) EnrollmentService {
	return &enrollmentService{
		enrollRepo: enrollRepo,
		notifier:   notifier,
		twClient:   twClient,
	}
}

func (s *enrollmentService) Enroll(ctx context.Context, req dtos.EnrollRequest) (int64, error) {
	ok, err := utils.ValidatePhoneNumber(ctx, req.Phone, s.twClient)
	if err != nil {
		// Lookup outage must not block enrollments; fall back to the local check.
		utils.Logger.WithError(err).Warn("Phone lookup failed, accepting locally validated number")
	} else if !ok {
		return 0, utils.ErrInvalidPhone
	}

	status := req.Status
	if status == "" {
		status = constants.DefaultEnrollmentStatus
	}

	id, err := s.enrollRepo.Create(ctx, &models.Enrollment{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Status:   status,
		CourseID: req.CourseID,
	})
	if err != nil {
		return 0, err
	}

	s.notifier.SendAcknowledgment(req.Name, req.Email, "course enrollment")
	s.notifier.SendInternal("Course Enrollment", map[string]string{
		"Name":   req.Name,
		"Email":  req.Email,
		"Phone":  req.Phone,
		"Status": status,
	})
	return id, nil
}
