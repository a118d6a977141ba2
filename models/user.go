package models

import (
	"errors"
	"strings"
	"time"
)

// Language is the interface language preferred by a user.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageTamil   Language = "ta"
)

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageTamil
}

// OrDefault returns l when valid and English otherwise.
func (l Language) OrDefault() Language {
	if l.Valid() {
		return l
	}
	return LanguageEnglish
}

var (
	ErrIdentityMissing   = errors.New("either email or phone is required")
	ErrIdentityAmbiguous = errors.New("only one of email or phone may be provided")
)

// Identity is the primary identifier of an account: exactly one of Email or
// Phone is set.
type Identity struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Validate checks the exactly-one-of rule. Format checks live in the
// validators package.
func (i Identity) Validate() error {
	email := strings.TrimSpace(i.Email)
	phone := strings.TrimSpace(i.Phone)

	switch {
	case email == "" && phone == "":
		return ErrIdentityMissing
	case email != "" && phone != "":
		return ErrIdentityAmbiguous
	}
	return nil
}

// Normalized returns a copy with surrounding whitespace removed and the email
// lower-cased.
func (i Identity) Normalized() Identity {
	return Identity{
		Email: strings.ToLower(strings.TrimSpace(i.Email)),
		Phone: strings.TrimSpace(i.Phone),
	}
}

// String returns whichever identifier is set.
func (i Identity) String() string {
	if i.Email != "" {
		return i.Email
	}
	return i.Phone
}

// User is the public view of an account. Password material never leaves the
// server.
type User struct {
	ID                string   `json:"id"`
	Email             *string  `json:"email,omitempty"`
	Phone             *string  `json:"phone,omitempty"`
	Name              string   `json:"name"`
	PreferredLanguage Language `json:"preferred_language"`
	IsVerified        bool     `json:"is_verified"`
}

// Identity returns the identifier the account was registered with.
func (u User) Identity() Identity {
	var id Identity
	if u.Email != nil {
		id.Email = *u.Email
	}
	if u.Phone != nil {
		id.Phone = *u.Phone
	}
	return id
}

// StoredUser is the persisted account record, including credential and OTP
// state. It is used only between the server service and store layers.
type StoredUser struct {
	User

	PasswordHash string
	OTPCode      *string
	OTPExpiresAt *time.Time
	CreatedAt    time.Time
}

// TableName returns the name of the database table associated with the
// account record.
func (u StoredUser) TableName() string {
	return "users"
}
