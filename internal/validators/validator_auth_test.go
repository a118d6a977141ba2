// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-climate-intel/models"
)

func validRegister() models.RegisterRequest {
	return models.RegisterRequest{
		Email:             "asha@example.com",
		Password:          "secret1",
		Name:              "Asha",
		PreferredLanguage: models.LanguageTamil,
	}
}

func TestAuthValidator_Dispatch(t *testing.T) {
	v := NewAuthValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	})

	t.Run("register value and pointer", func(t *testing.T) {
		r := validRegister()
		require.NoError(t, v.Validate(ctx, r))
		require.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, validRegister(), "nope"), ErrUnknownField)
	})

	t.Run("identity and language", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.Identity{Phone: "+919876543210"}))
		require.ErrorIs(t, v.Validate(ctx, models.Language("fr")), ErrUnsupportedLanguage)
	})
}

func TestAuthValidator_Register(t *testing.T) {
	v := NewAuthValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(r *models.RegisterRequest)
		wantErr error
	}{
		{"valid email", func(r *models.RegisterRequest) {}, nil},
		{"valid phone", func(r *models.RegisterRequest) { r.Email, r.Phone = "", "9876543210" }, nil},
		{"no identity", func(r *models.RegisterRequest) { r.Email = "  " }, models.ErrIdentityMissing},
		{"both identities", func(r *models.RegisterRequest) { r.Phone = "+919876543210" }, models.ErrIdentityAmbiguous},
		{"bad email", func(r *models.RegisterRequest) { r.Email = "not-an-email" }, ErrInvalidEmail},
		{"display name email", func(r *models.RegisterRequest) { r.Email = "Asha <asha@example.com>" }, ErrInvalidEmail},
		{"short phone", func(r *models.RegisterRequest) { r.Email, r.Phone = "", "12345" }, ErrInvalidPhone},
		{"letters in phone", func(r *models.RegisterRequest) { r.Email, r.Phone = "", "+91abc43210" }, ErrInvalidPhone},
		{"short password", func(r *models.RegisterRequest) { r.Password = "12345" }, ErrPasswordTooShort},
		{"blank name", func(r *models.RegisterRequest) { r.Name = " \t" }, ErrEmptyName},
		{"bad language", func(r *models.RegisterRequest) { r.PreferredLanguage = "de" }, ErrUnsupportedLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRegister()
			tt.mutate(&r)

			err := v.Validate(ctx, r)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthValidator_RegisterSingleField(t *testing.T) {
	r := validRegister()
	r.Password = ""

	assert.NoError(t, NewAuthValidator().Validate(context.Background(), r, FieldIdentity, FieldName))
}

func TestAuthValidator_VerifyOTP(t *testing.T) {
	v := NewAuthValidator()
	ctx := context.Background()

	for _, code := range []string{"123456", "000000"} {
		assert.NoError(t, v.Validate(ctx, models.VerifyOTPRequest{Email: "a@b.co", OTP: code}), code)
	}
	for _, code := range []string{"", "12345", "1234567", "12345a", "١٢٣٤٥٦", " 123456"} {
		assert.ErrorIs(t, v.Validate(ctx, models.VerifyOTPRequest{Email: "a@b.co", OTP: code}), ErrInvalidOTPFormat, code)
	}
}

func TestAuthValidator_Login(t *testing.T) {
	v := NewAuthValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.LoginRequest{Phone: "+919876543210", Password: "x"}))
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Phone: "+919876543210"}), ErrPasswordTooShort)
	assert.ErrorIs(t, v.Validate(ctx, &models.LoginRequest{Password: "secret"}), models.ErrIdentityMissing)
}

func TestValidateIdentity_NormalizesEmail(t *testing.T) {
	assert.NoError(t, ValidateIdentity(models.Identity{Email: "  Asha@Example.COM "}))
}
