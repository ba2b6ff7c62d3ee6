package services

import (
	"context"

	"github.com/divi1127/BackendDeepF/internal/dtos"
	"github.com/divi1127/BackendDeepF/internal/models"
	"github.com/divi1127/BackendDeepF/internal/repositories"
)

type TestimonialService interface {
	ListTestimonials(ctx context.Context) ([]*models.Testimonial, error)
	CreateTestimonial(ctx context.Context, req dtos.TestimonialCreateRequest) (int64, error)
}

type testimonialService struct {
	repo repositories.TestimonialRepository
}

func NewTestimonialService(repo repositories.TestimonialRepository) TestimonialService {
	return &testimonialService{repo: repo}
}

func (s *testimonialService) ListTestimonials(ctx context.Context) ([]*models.Testimonial, error) {
	return s.repo.ListAll(ctx)
}

func (s *testimonialService) CreateTestimonial(ctx context.Context, req dtos.TestimonialCreateRequest) (int64, error) {
	return s.repo.Create(ctx, &models.Testimonial{
		Name:     req.Name,
		Role:     req.Role,
		Review:   req.Review,
		Verified: req.Verified,
	})
}
