package models

import "time"

// Registration for the registrations table (workshop sign-ups).
type Registration struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	CurrentStatus string    `json:"current_status"`
	WorkshopTitle string    `json:"workshop_title"`
	CreatedAt     time.Time `json:"created_at"`
}
