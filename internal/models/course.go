package models

import "time"

// Course for the courses table. Syllabus is stored as serialized text
// (a JSON array of topic strings) and parsed at the service layer.
type Course struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    string    `json:"duration"`
	Level       string    `json:"level"`
	Price       float64   `json:"price"`
	Syllabus    string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
