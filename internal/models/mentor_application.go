package models

import "time"

// MentorApplication for the mentor_applications table. ResumeFile is
// the stored filename under the uploads directory.
type MentorApplication struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Expertise  string    `json:"expertise"`
	Experience string    `json:"experience"`
	Message    string    `json:"message"`
	ResumeFile string    `json:"resume_file"`
	CreatedAt  time.Time `json:"created_at"`
}
