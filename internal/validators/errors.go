package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail        = errors.New("invalid email address")
	ErrInvalidPhone        = errors.New("invalid phone number")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrEmptyName           = errors.New("name is required")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrInvalidOTPFormat    = errors.New("OTP must be exactly 6 digits")
	ErrInvalidCoordinate   = errors.New("invalid coordinate")
	ErrEmptyMessage        = errors.New("message is required")
	ErrMessageTooLong      = errors.New("message is too long")
)
