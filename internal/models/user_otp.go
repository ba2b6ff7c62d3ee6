package models

import (
	"time"

	"github.com/google/uuid"
)

// UserOTP for the user_otps table.
type UserOTP struct {
	ID        uuid.UUID
	Email     string
	Code      string
	ExpiresAt time.Time
	CreatedAt time.Time
}
