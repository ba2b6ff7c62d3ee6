package dtos

type RegisterRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	CurrentStatus string `json:"currentStatus" validate:"required"`
	Workshop      string `json:"workshop" validate:"required"`
}

type RegisterResponse struct {
	Message  string `json:"message"`
	InsertID int64  `json:"insertId"`
}
