package utils

import "errors"

/*
   Sentinel errors for the service layer.
   Controllers can do: if errors.Is(err, ErrXYZ) { ... }
*/
var (
	ErrInvalidPhone       = errors.New("invalid_phone")
	ErrEmailExists        = errors.New("email_exists")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidOTP         = errors.New("invalid_otp")
	ErrCourseNotFound     = errors.New("course_not_found")
	ErrInvalidFileType    = errors.New("invalid_file_type")
	ErrFileTooLarge       = errors.New("file_too_large")
	ErrMissingFile        = errors.New("missing_file")
)
