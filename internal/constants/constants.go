package constants

import "time"

// OTP login settings
const (
	OTPLength = 6
	OTPTTL    = 10 * time.Minute
)

// Access tokens issued by verify-otp
const (
	AccessTokenTTL = 24 * time.Hour
)

// Resume uploads
const (
	MaxResumeBytes   = 10 << 20 // 10 MiB
	UploadsURLPrefix = "/uploads/"
)

// AllowedResumeExtensions are matched case-insensitively.
var AllowedResumeExtensions = []string{".pdf", ".doc", ".docx"}

// Default enrollment status when the client omits one.
const DefaultEnrollmentStatus = "pending"
