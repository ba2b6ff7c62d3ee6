package repositories

import (
	"context"

	"github.com/divi1127/BackendDeepF/internal/models"
)

type EnrollmentRepository interface {
	// Create inserts the enrollment and returns the generated id.
	Create(ctx context.Context, e *models.Enrollment) (int64, error)
}

type enrollmentRepo struct {
	db DB
}

func NewEnrollmentRepository(db DB) EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

func (r *enrollmentRepo) Create(ctx context.Context, e *models.Enrollment) (int64, error) {
	q := `
        INSERT INTO enrollments (name, email, phone, status, course_id, created_at)
        VALUES ($1, $2, $3, $4, $5, NOW())
        RETURNING id
    `
	var id int64
	err := r.db.QueryRow(ctx, q, e.Name, e.Email, e.Phone, e.Status, e.CourseID).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
