package validators

import (
	"context"
	"net/mail"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-climate-intel/models"
)

const (
	FieldIdentity = "identity"
	FieldPassword = "password"
	FieldName     = "name"
	FieldLanguage = "preferred_language"
	FieldOTP      = "otp"

	MinPasswordLength = 6
)

var (
	phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	otpPattern   = regexp.MustCompile(`^[0-9]{6}$`)
)

// AuthValidator validates registration, OTP verification and login payloads.
type AuthValidator struct{}

func NewAuthValidator() Validator {
	return &AuthValidator{}
}

func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.VerifyOTPRequest:
		return v.validateVerifyOTP(value, fields...)
	case *models.VerifyOTPRequest:
		return v.validateVerifyOTP(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.Identity:
		return ValidateIdentity(value)
	case models.Language:
		return ValidateLanguage(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthValidator) validateRegister(r models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIdentity, FieldPassword, FieldName, FieldLanguage}
	}

	for _, f := range fields {
		switch f {
		case FieldIdentity:
			if err := ValidateIdentity(r.Identity()); err != nil {
				return err
			}
		case FieldPassword:
			if err := ValidatePassword(r.Password); err != nil {
				return err
			}
		case FieldName:
			if strings.TrimSpace(r.Name) == "" {
				return ErrEmptyName
			}
		case FieldLanguage:
			if err := ValidateLanguage(r.PreferredLanguage); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthValidator) validateVerifyOTP(r models.VerifyOTPRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIdentity, FieldOTP}
	}

	for _, f := range fields {
		switch f {
		case FieldIdentity:
			if err := ValidateIdentity(r.Identity()); err != nil {
				return err
			}
		case FieldOTP:
			if err := ValidateOTP(r.OTP); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthValidator) validateLogin(r models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIdentity, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldIdentity:
			if err := ValidateIdentity(r.Identity()); err != nil {
				return err
			}
		case FieldPassword:
			// the length rule applies at registration only
			if r.Password == "" {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ValidateIdentity enforces the exactly-one-of rule and the format of
// whichever identifier is set.
func ValidateIdentity(identity models.Identity) error {
	if err := identity.Validate(); err != nil {
		return err
	}

	id := identity.Normalized()
	if id.Email != "" {
		addr, err := mail.ParseAddress(id.Email)
		if err != nil || addr.Address != id.Email {
			return ErrInvalidEmail
		}
		return nil
	}

	if !phonePattern.MatchString(id.Phone) {
		return ErrInvalidPhone
	}
	return nil
}

// ValidatePassword enforces the minimum length.
func ValidatePassword(password string) error {
	if len([]rune(password)) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// ValidateOTP accepts exactly six ASCII digits.
func ValidateOTP(code string) error {
	if !otpPattern.MatchString(code) {
		return ErrInvalidOTPFormat
	}
	return nil
}

// ValidateLanguage accepts the supported interface languages.
func ValidateLanguage(language models.Language) error {
	if !language.Valid() {
		return ErrUnsupportedLanguage
	}
	return nil
}
