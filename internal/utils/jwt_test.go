package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var issuedAt = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", "user-123", issuedAt, time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.UserID != "user-123" {
		t.Errorf("expected UserID 'user-123', got %s", token.UserID)
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", claims.Issuer)
	}
	if !claims.ExpiresAt.Time.Equal(issuedAt.Add(time.Hour)) {
		t.Errorf("expected expiry %v, got %v", issuedAt.Add(time.Hour), claims.ExpiresAt.Time)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "u", time.Hour, "key"},
		{"empty user", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "u", 0, "key"},
		{"empty key", "iss", "u", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, issuedAt, tt.duration, tt.key)
			if !errors.Is(err, ErrInvalidTokenParams) {
				t.Errorf("expected ErrInvalidTokenParams, got %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken(t *testing.T) {
	genToken, err := GenerateJWTToken("test-issuer", "user-456", issuedAt, 5*time.Minute, "secret-key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	t.Run("valid", func(t *testing.T) {
		parsed, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "test-issuer", issuedAt.Add(time.Minute))
		if err != nil {
			t.Fatalf("expected token to be valid, got error: %v", err)
		}
		if parsed.UserID != "user-456" {
			t.Errorf("expected userID user-456, got %s", parsed.UserID)
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer", issuedAt)
		if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			t.Errorf("expected signature error, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "test-issuer", issuedAt.Add(time.Hour))
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("expected expiry error, got %v", err)
		}
	})

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "fake-issuer", issuedAt)
		if !errors.Is(err, jwt.ErrTokenInvalidIssuer) {
			t.Errorf("expected issuer error, got %v", err)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		if _, err := ValidateAndParseJWTToken("not.a.token", "key", "iss", issuedAt); err == nil {
			t.Error("expected error for malformed token string, got nil")
		}
	})
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def", "abc.def", false},
		{"bearer   abc.def ", "abc.def", false},
		{"Basic abc", "", true},
		{"Bearer", "", true},
		{"", "", true},
		{"Bearer a b", "", true},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: unexpected error state: %v", tt.header, err)
		}
		if got != tt.want {
			t.Errorf("%q: expected %q, got %q", tt.header, tt.want, got)
		}
	}
}
