package dtos

type EnrollRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Status   string `json:"status"`
	CourseID int64  `json:"courseId" validate:"required"`
}

type EnrollResponse struct {
	Message  string `json:"message"`
	InsertID int64  `json:"insertId"`
}
