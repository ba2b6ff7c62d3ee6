package models

import "time"

// Workshop for the workshops table.
type Workshop struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Speaker     string    `json:"speaker"`
	Date        string    `json:"date"`
	Mode        string    `json:"mode"`
	CreatedAt   time.Time `json:"created_at"`
}
