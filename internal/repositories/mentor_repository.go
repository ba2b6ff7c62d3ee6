package repositories

import (
	"context"

	"github.com/divi1127/BackendDeepF/internal/models"
)

type MentorRepository interface {
	ListAll(ctx context.Context) ([]*models.Mentor, error)
}

type mentorRepo struct {
	db DB
}

func NewMentorRepository(db DB) MentorRepository {
	return &mentorRepo{db: db}
}

func (r *mentorRepo) ListAll(ctx context.Context) ([]*models.Mentor, error) {
	q := `
        SELECT id, name, role, company, expertise, bio, image_url, created_at
        FROM mentors
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Mentor
	for rows.Next() {
		var m models.Mentor
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Company, &m.Expertise, &m.Bio, &m.ImageURL, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}
