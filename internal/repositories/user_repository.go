package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/divi1127/BackendDeepF/internal/models"
	"github.com/divi1127/BackendDeepF/internal/utils"
)

type UserRepository interface {
	// Create inserts the user and returns the generated id. A duplicate
	// email surfaces as utils.ErrEmailExists (users.email is UNIQUE).
	Create(ctx context.Context, u *models.User) (int64, error)

	// GetByEmail returns (nil, nil) when no user has the given email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	ListAll(ctx context.Context) ([]*models.User, error)
}

type userRepo struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &userRepo{db: db}
}

func baseSelectUser() string {
	return `SELECT id, name, email, password_hash, created_at FROM users`
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, u *models.User) (int64, error) {
	q := `
        INSERT INTO users (name, email, password_hash, created_at)
        VALUES ($1, $2, $3, NOW())
        RETURNING id
    `
	var id int64
	err := r.db.QueryRow(ctx, q, u.Name, u.Email, u.PasswordHash).Scan(&id)
	if err != nil {
		if IsUniqueViolation(err) {
			return 0, utils.ErrEmailExists
		}
		return 0, err
	}
	return id, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+" WHERE email=$1", email)
	u, err := scanUser(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return u, err
}

func (r *userRepo) ListAll(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, baseSelectUser()+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
