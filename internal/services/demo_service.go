package services

import (
	"context"

	twilio "github.com/twilio/twilio-go"

	"github.com/divi1127/BackendDeepF/internal/dtos"
	"github.com/divi1127/BackendDeepF/internal/models"
	"github.com/divi1127/BackendDeepF/internal/repositories"
	"github.com/divi1127/BackendDeepF/internal/utils"
)

type DemoService interface {
	RequestDemo(ctx context.Context, req dtos.DemoRequestRequest) (int64, error)
}

type demoService struct {
	demoRepo repositories.DemoRequestRepository
	notifier NotificationService
	twClient *twilio.RestClient
}

func NewDemoService(
	demoRepo repositories.DemoRequestRepository,
	notifier NotificationService,
	twClient *twilio.RestClient,
) DemoService {
	return &demoService{
		demoRepo: demoRepo,
		notifier: notifier,
		twClient: twClient,
	}
}

func (s *demoService) RequestDemo(ctx context.Context, req dtos.DemoRequestRequest) (int64, error) {
	ok, err := utils.ValidatePhoneNumber(ctx, req.Phone, s.twClient)
	if err != nil {
		utils.Logger.WithError(err).Warn("Phone lookup failed, accepting locally validated number")
	} else if !ok {
		return 0, utils.ErrInvalidPhone
	}

	id, err := s.demoRepo.Create(ctx, &models.DemoRequest{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Status:  req.Status,
		Course:  req.Course,
		Message: req.Message,
	})
	if err != nil {
		return 0, err
	}

	s.notifier.SendAcknowledgment(req.Name, req.Email, "demo request")
	s.notifier.SendInternal("Demo Request", map[string]string{
		"Name":   req.Name,
		"Email":  req.Email,
		"Phone":  req.Phone,
		"Course": req.Course,
	})
	return id, nil
}
