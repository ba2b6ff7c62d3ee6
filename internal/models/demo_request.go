package models

import "time"

// DemoRequest for the demo_requests table.
type DemoRequest struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	Course    string    `json:"course"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
