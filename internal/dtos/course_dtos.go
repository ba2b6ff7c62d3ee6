package dtos

/*
CourseDTO is the API shape of a course. Syllabus is the parsed form of
the serialized text column; a malformed column yields an empty list,
never a failed request.
*/
type CourseDTO struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Level       string   `json:"level"`
	Price       float64  `json:"price"`
	Syllabus    []string `json:"syllabus"`
}
