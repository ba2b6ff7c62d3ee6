package services

import (
	"context"

	"github.com/divi1127/BackendDeepF/internal/dtos"
	"github.com/divi1127/BackendDeepF/internal/models"
	"github.com/divi1127/BackendDeepF/internal/repositories"
)

type MentorService interface {
	ListMentors(ctx context.Context) ([]*models.Mentor, error)

	// Apply records a mentor application whose resume has already been
	// written to the upload store under resumeFile.
	Apply(ctx context.Context, req dtos.MentorApplyRequest, resumeFile string) (int64, error)
}

type mentorService struct {
	mentorRepo repositories.MentorRepository
	appRepo    repositories.MentorApplicationRepository
	notifier   NotificationService
}

func NewMentorService(
	mentorRepo repositories.MentorRepository,
	appRepo repositories.MentorApplicationRepository,
	notifier NotificationService,
) MentorService {
	return &mentorService{
		mentorRepo: mentorRepo,
		appRepo:    appRepo,
		notifier:   notifier,
	}
}

func (s *mentorService) ListMentors(ctx context.Context) ([]*models.Mentor, error) {
	return s.mentorRepo.ListAll(ctx)
}

func (s *mentorService) Apply(ctx context.Context, req dtos.MentorApplyRequest, resumeFile string) (int64, error) {
	id, err := s.appRepo.Create(ctx, &models.MentorApplication{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Expertise:  req.Expertise,
		Experience: req.Experience,
		Message:    req.Message,
		ResumeFile: resumeFile,
	})
	if err != nil {
		return 0, err
	}

	s.notifier.SendAcknowledgment(req.Name, req.Email, "mentor application")
	s.notifier.SendInternal("Mentor Application", map[string]string{
		"Name":      req.Name,
		"Email":     req.Email,
		"Expertise": req.Expertise,
		"Resume":    resumeFile,
	})
	return id, nil
}
