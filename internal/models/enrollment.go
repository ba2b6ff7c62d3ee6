package models

import "time"

// Enrollment for the enrollments table.
type Enrollment struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	CourseID  int64     `json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
}
