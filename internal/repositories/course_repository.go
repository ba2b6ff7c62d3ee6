package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/divi1127/BackendDeepF/internal/models"
)

type CourseRepository interface {
	ListAll(ctx context.Context) ([]*models.Course, error)

	// GetByID returns (nil, nil) when no course has the given id.
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

type courseRepo struct {
	db DB
}

func NewCourseRepository(db DB) CourseRepository {
	return &courseRepo{db: db}
}

func baseSelectCourse() string {
	return `
        SELECT id, title, description, duration, level, price, syllabus, created_at
        FROM courses
    `
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var c models.Course
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Duration,
		&c.Level,
		&c.Price,
		&c.Syllabus,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *courseRepo) ListAll(ctx context.Context) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, baseSelectCourse()+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *courseRepo) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	row := r.db.QueryRow(ctx, baseSelectCourse()+" WHERE id=$1", id)
	c, err := scanCourse(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return c, err
}
