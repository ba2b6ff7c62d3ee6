package models

import "time"

// Testimonial for the testimonials table.
type Testimonial struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Review    string    `json:"review"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}
