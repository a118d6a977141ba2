// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-climate-intel/internal/adapter"
	"github.com/MKhiriev/go-climate-intel/internal/app"
	"github.com/MKhiriev/go-climate-intel/internal/validators"
)

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"nil", nil, nil},
		{"invalid otp", fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidOTP), ErrInvalidOTP},
		{"expired otp", fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgOTPExpired), ErrInvalidOTP},
		{"duplicate on bad request", fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgUserAlreadyExists), ErrConflict},
		{"other bad request", fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgScenarioOutOfRange), ErrValidation},
		{"empty bad request", fmt.Errorf("%w: ", adapter.ErrBadRequest), ErrValidation},
		{"wrong credentials", fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidCredentials), ErrInvalidCredentials},
		{"bad token", fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidToken), ErrSessionExpired},
		{"forbidden", fmt.Errorf("%w: ", adapter.ErrForbidden), ErrSessionExpired},
		{"purged registration", fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgUserNotFound), ErrInvalidOTP},
		{"unknown route", fmt.Errorf("%w: %s", adapter.ErrNotFound, "Not Found"), ErrTransport},
		{"conflict", fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgUserAlreadyExists), ErrConflict},
		{"bad gateway", fmt.Errorf("%w: %s", adapter.ErrBadGateway, app.MsgAIServiceError), ErrTransport},
		{"server error", fmt.Errorf("%w: boom", adapter.ErrInternalServerError), ErrTransport},
		{"network", fmt.Errorf("login request: %w: %w", adapter.ErrTransport, errors.New("connection refused")), ErrTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.err)
			if tt.wantErr == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.wantErr)
		})
	}
}

func TestMapAdapterError_ValidationKeepsServerDetail(t *testing.T) {
	got := mapAdapterError(fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgScenarioOutOfRange))

	assert.Equal(t, "Scenario change out of range.", UserNotice(got))
}

func TestUserNotice(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{validationError(validators.ErrInvalidOTPFormat), "OTP must be exactly 6 digits."},
		{ErrInvalidCredentials, "Wrong email, phone or password."},
		{ErrInvalidOTP, "The code is wrong or has expired."},
		{ErrConflict, "An account with this email or phone already exists."},
		{ErrExpiredState, "This action is not available right now."},
		{ErrSessionExpired, "Your session has expired. Please log in again."},
		{ErrSuperseded, ""},
		{ErrNoClimateData, "Select a location first."},
		{fmt.Errorf("%w: %w", ErrTransport, errors.New("dial tcp")), "The service is unavailable. Please try again."},
		{errors.New("anything else"), "Something went wrong. Please try again."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, UserNotice(tt.err))
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "Abc", capitalize("abc"))
	assert.Equal(t, "Ébc", capitalize("ébc"))
}
