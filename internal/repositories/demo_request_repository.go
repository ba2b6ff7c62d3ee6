package repositories

import (
	"context"

	"github.com/divi1127/BackendDeepF/internal/models"
)

type DemoRequestRepository interface {
	Create(ctx context.Context, d *models.DemoRequest) (int64, error)
}

type demoRequestRepo struct {
	db DB
}

func NewDemoRequestRepository(db DB) DemoRequestRepository {
	return &demoRequestRepo{db: db}
}

func (r *demoRequestRepo) Create(ctx context.Context, d *models.DemoRequest) (int64, error) {
	q := `
        INSERT INTO demo_requests (name, email, phone, status, course, message, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW())
        RETURNING id
    `
	var id int64
	err := r.db.QueryRow(ctx, q, d.Name, d.Email, d.Phone, d.Status, d.Course, d.Message).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
