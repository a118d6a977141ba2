package service

import "errors"

// Server-side service errors. Handlers map them to HTTP statuses.
var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrUserAlreadyExists     = errors.New("user already exists")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidOTP            = errors.New("invalid OTP")
	ErrOTPExpired            = errors.New("OTP expired")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUnsupportedLanguage   = errors.New("unsupported language")
	ErrInvalidLocation       = errors.New("invalid location")
	ErrScenarioOutOfRange    = errors.New("scenario change out of range")
	ErrAIServiceUnavailable  = errors.New("AI service error")
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")
)
