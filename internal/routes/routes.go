package routes

const (
	// Health
	Health = "/health"

	// Courses (read-only, seeded)
	Courses    = "/api/courses"
	CourseByID = "/api/courses/{id}"

	// Enrollment
	Enroll = "/api/enroll"

	// Accounts / OTP login
	Users     = "/api/users"
	Signup    = "/api/signup"
	Login     = "/api/login"
	VerifyOTP = "/api/verify-otp"

	// Workshops
	Workshops = "/api/workshops"
	Register  = "/api/register"

	// Mentors
	MentorApply = "/api/mentor-apply"
	Mentors     = "/api/mentors"

	// Testimonials
	Testimonials = "/api/testimonials"

	// Demo requests
	DemoRequest = "/api/demo-request"

	// Static resume files
	UploadsPrefix = "/uploads/"
)
