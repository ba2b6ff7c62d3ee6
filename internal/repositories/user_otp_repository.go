package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/divi1127/BackendDeepF/internal/models"
)

type UserOTPRepository interface {
	CreateCode(ctx context.Context, email, code string, expiresAt time.Time) error

	// GetValidCode returns the newest non-expired row matching email+code,
	// or (nil, nil) when there is none.
	GetValidCode(ctx context.Context, email, code string) (*models.UserOTP, error)

	DeleteAllForEmail(ctx context.Context, email string) error
	CleanupExpired(ctx context.Context) error
}

type userOTPRepo struct {
	db DB
}

func NewUserOTPRepository(db DB) UserOTPRepository {
	return &userOTPRepo{db: db}
}

func (r *userOTPRepo) CreateCode(ctx context.Context, email, code string, expiresAt time.Time) error {
	q := `
        INSERT INTO user_otps (id, email, code, expires_at, created_at)
        VALUES ($1, $2, $3, $4, NOW())
    `
	_, err := r.db.Exec(ctx, q, uuid.New(), email, code, expiresAt)
	return err
}

func (r *userOTPRepo) GetValidCode(ctx context.Context, email, code string) (*models.UserOTP, error) {
	q := `
        SELECT id, email, code, expires_at, created_at
        FROM user_otps
        WHERE email = $1
          AND code = $2
          AND expires_at > NOW()
        ORDER BY created_at DESC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, q, email, code)
	var rec models.UserOTP
	err := row.Scan(&rec.ID, &rec.Email, &rec.Code, &rec.ExpiresAt, &rec.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *userOTPRepo) DeleteAllForEmail(ctx context.Context, email string) error {
	q := `DELETE FROM user_otps WHERE email = $1`
	_, err := r.db.Exec(ctx, q, email)
	return err
}

func (r *userOTPRepo) CleanupExpired(ctx context.Context) error {
	q := `DELETE FROM user_otps WHERE expires_at < NOW()`
	_, err := r.db.Exec(ctx, q)
	return err
}
