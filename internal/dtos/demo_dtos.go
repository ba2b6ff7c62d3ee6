package dtos

type DemoRequestRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Status  string `json:"status"`
	Course  string `json:"course" validate:"required"`
	Message string `json:"message"`
}

type DemoRequestResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
