package services

import (
	"context"
	"encoding/json"

	"github.com/divi1127/BackendDeepF/internal/dtos"
	"github.com/divi1127/BackendDeepF/internal/models"
	"github.com/divi1127/BackendDeepF/internal/repositories"
	"github.com/divi1127/BackendDeepF/internal/utils"
)

type CourseService interface {
	ListCourses(ctx context.Context) ([]dtos.CourseDTO, error)

	// GetCourse returns utils.ErrCourseNotFound for an unknown id.
	GetCourse(ctx context.Context, id int64) (*dtos.CourseDTO, error)
}

type courseService struct {
	courseRepo repositories.CourseRepository
}

func NewCourseService(courseRepo repositories.CourseRepository) CourseService {
	return &courseService{courseRepo: courseRepo}
}

func (s *courseService) ListCourses(ctx context.Context) ([]dtos.CourseDTO, error) {
	courses, err := s.courseRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dtos.CourseDTO, 0, len(courses))
	for _, c := range courses {
		out = append(out, toCourseDTO(c))
	}
	return out, nil
}

func (s *courseService) GetCourse(ctx context.Context, id int64) (*dtos.CourseDTO, error) {
	c, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, utils.ErrCourseNotFound
	}
	dto := toCourseDTO(c)
	return &dto, nil
}

func toCourseDTO(c *models.Course) dtos.CourseDTO {
	return dtos.CourseDTO{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Duration:    c.Duration,
		Level:       c.Level,
		Price:       c.Price,
		Syllabus:    parseSyllabus(c.Syllabus),
	}
}

// parseSyllabus decodes the serialized syllabus column. Malformed text
// degrades to an empty list rather than failing the request.
func parseSyllabus(raw string) []string {
	var topics []string
	if err := json.Unmarshal([]byte(raw), &topics); err != nil {
		utils.Logger.WithError(err).Debug("Malformed syllabus column, returning empty list")
		return []string{}
	}
	if topics == nil {
		return []string{}
	}
	return topics
}
