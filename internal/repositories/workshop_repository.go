package repositories

import (
	"context"

	"github.com/divi1127/BackendDeepF/internal/models"
)

type WorkshopRepository interface {
	ListAll(ctx context.Context) ([]*models.Workshop, error)
}

type workshopRepo struct {
	db DB
}

func NewWorkshopRepository(db DB) WorkshopRepository {
	return &workshopRepo{db: db}
}

func (r *workshopRepo) ListAll(ctx context.Context) ([]*models.Workshop, error) {
	q := `
        SELECT id, title, description, speaker, date, mode, created_at
        FROM workshops
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Workshop
	for rows.Next() {
		var w models.Workshop
		if err := rows.Scan(&w.ID, &w.Title, &w.Description, &w.Speaker, &w.Date, &w.Mode, &w.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &w)
	}
	return out, rows.Err()
}
