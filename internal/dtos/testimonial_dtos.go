package dtos

type TestimonialCreateRequest struct {
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required"`
	Review   string `json:"review" validate:"required"`
	Verified bool   `json:"verified"`
}

type TestimonialCreateResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
