package repositories

import (
	"context"

	"github.com/divi1127/BackendDeepF/internal/models"
)

type RegistrationRepository interface {
	Create(ctx context.Context, reg *models.Registration) (int64, error)
}

type registrationRepo struct {
	db DB
}

func NewRegistrationRepository(db DB) RegistrationRepository {
	return &registrationRepo{db: db}
}

func (r *registrationRepo) Create(ctx context.Context, reg *models.Registration) (int64, error) {
	q := `
        INSERT INTO registrations (name, email, phone, current_status, workshop_title, created_at)
        VALUES ($1, $2, $3, $4, $5, NOW())
        RETURNING id
    `
	var id int64
	err := r.db.QueryRow(ctx, q, reg.Name, reg.Email, reg.Phone, reg.CurrentStatus, reg.WorkshopTitle).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
