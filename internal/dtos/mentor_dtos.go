package dtos

// MentorApplyRequest carries the non-file fields of the multipart
// mentor-apply form; the resume file travels separately.
type MentorApplyRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Expertise  string `json:"expertise" validate:"required"`
	Experience string `json:"experience" validate:"required"`
	Message    string `json:"message"`
}

type MentorApplyResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
	FileURL string `json:"fileUrl"`
}
