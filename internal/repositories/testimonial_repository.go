package repositories

import (
	"context"

	"github.com/divi1127/BackendDeepF/internal/models"
)

type TestimonialRepository interface {
	ListAll(ctx context.Context) ([]*models.Testimonial, error)
	Create(ctx context.Context, t *models.Testimonial) (int64, error)
}

type testimonialRepo struct {
	db DB
}

func NewTestimonialRepository(db DB) TestimonialRepository {
	return &testimonialRepo{db: db}
}

func (r *testimonialRepo) ListAll(ctx context.Context) ([]*models.Testimonial, error) {
	q := `
        SELECT id, name, role, review, verified, created_at
        FROM testimonials
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Testimonial
	for rows.Next() {
		var t models.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Role, &t.Review, &t.Verified, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

func (r *testimonialRepo) Create(ctx context.Context, t *models.Testimonial) (int64, error) {
	q := `
        INSERT INTO testimonials (name, role, review, verified, created_at)
        VALUES ($1, $2, $3, $4, NOW())
        RETURNING id
    `
	var id int64
	err := r.db.QueryRow(ctx, q, t.Name, t.Role, t.Review, t.Verified).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
