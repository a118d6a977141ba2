package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT with convenience accessors for authentication flows.
//
// It embeds [jwt.RegisteredClaims] so it can be passed directly to
// jwt.ParseWithClaims. UserID is a cached copy of the "sub" claim.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the account identifier extracted from the "sub" claim.
	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// Session is the authenticated state held by the client: the bearer token and
// the user it belongs to.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Valid reports whether the session carries a token and a user id.
func (s Session) Valid() bool {
	return s.Token != "" && s.User.ID != ""
}

// PendingRegistration is what the client keeps between a successful
// registration request and OTP verification.
type PendingRegistration struct {
	Identity Identity `json:"identity"`
	Name     string   `json:"name"`
	Language Language `json:"language"`
	UserID   string   `json:"user_id"`
	DemoOTP  string   `json:"demo_otp"`
}
