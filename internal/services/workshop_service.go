package services

import (
	"context"

	twilio "github.com/twilio/twilio-go"

	"github.com/divi1127/BackendDeepF/internal/dtos"
	"github.com/divi1127/BackendDeepF/internal/models"
	"github.com/divi1127/BackendDeepF/internal/repositories"
	"github.com/divi1127/BackendDeepF/internal/utils"
)

type WorkshopService interface {
	ListWorkshops(ctx context.Context) ([]*models.Workshop, error)
	Register(ctx context.Context, req dtos.RegisterRequest) (int64, error)
}

type workshopService struct {
	workshopRepo repositories.WorkshopRepository
	regRepo      repositories.RegistrationRepository
	notifier     NotificationService
	twClient     *twilio.RestClient
}

func NewWorkshopService(
	workshopRepo repositories.WorkshopRepository,
	regRepo repositories.RegistrationRepository,
	notifier NotificationService,
	twClient *twilio.RestClient,
) WorkshopService {
	return &workshopService{
		workshopRepo: workshopRepo,
		regRepo:      regRepo,
		notifier:     notifier,
		twClient:     twClient,
	}
}

func (s *workshopService) ListWorkshops(ctx context.Context) ([]*models.Workshop, error) {
	return s.workshopRepo.ListAll(ctx)
}

func (s *workshopService) Register(ctx context.Context, req dtos.RegisterRequest) (int64, error) {
	ok, err := utils.ValidatePhoneNumber(ctx, req.Phone, s.twClient)
	if err != nil {
		utils.Logger.WithError(err).Warn("Phone lookup failed, accepting locally validated number")
	} else if !ok {
		return 0, utils.ErrInvalidPhone
	}

	id, err := s.regRepo.Create(ctx, &models.Registration{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		CurrentStatus: req.CurrentStatus,
		WorkshopTitle: req.Workshop,
	})
	if err != nil {
		return 0, err
	}

	s.notifier.SendAcknowledgment(req.Name, req.Email, "workshop registration")
	s.notifier.SendInternal("Workshop Registration", map[string]string{
		"Name":     req.Name,
		"Email":    req.Email,
		"Phone":    req.Phone,
		"Workshop": req.Workshop,
	})
	return id, nil
}
