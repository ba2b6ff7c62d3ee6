package repositories

import (
	"context"

	"github.com/divi1127/BackendDeepF/internal/models"
)

type MentorApplicationRepository interface {
	Create(ctx context.Context, a *models.MentorApplication) (int64, error)
}

type mentorApplicationRepo struct {
	db DB
}

func NewMentorApplicationRepository(db DB) MentorApplicationRepository {
	return &mentorApplicationRepo{db: db}
}

func (r *mentorApplicationRepo) Create(ctx context.Context, a *models.MentorApplication) (int64, error) {
	q := `
        INSERT INTO mentor_applications
            (name, email, phone, expertise, experience, message, resume_file, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
        RETURNING id
    `
	var id int64
	err := r.db.QueryRow(ctx, q,
		a.Name, a.Email, a.Phone, a.Expertise, a.Experience, a.Message, a.ResumeFile,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
