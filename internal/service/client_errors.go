// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Client error kinds. Every failure the client services return wraps exactly
// one of them, or one of the shared ErrInvalidCredentials and ErrInvalidOTP.
var (
	// ErrValidation marks malformed local input. Such requests never leave
	// the device.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is returned when the identity is already registered.
	ErrConflict = errors.New("identity already registered")

	// ErrExpiredState is returned when an operation is invoked from a state
	// that does not allow it. State and session are left untouched.
	ErrExpiredState = errors.New("operation not allowed in current state")

	// ErrTransport marks network and server failures. Retrying the user
	// action is always safe.
	ErrTransport = errors.New("service unavailable")

	// ErrSessionExpired is returned when the server rejects the token of an
	// authenticated call. The session is cleared.
	ErrSessionExpired = errors.New("session expired")

	// ErrSuperseded is returned by a climate fetch whose result arrived after
	// a newer fetch was issued. The result is not committed.
	ErrSuperseded = errors.New("superseded by a newer request")

	// ErrNoClimateData is returned by operations that need a fetched location.
	ErrNoClimateData = errors.New("no climate data loaded")
)

func validationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// UserNotice returns a short human-readable description of err for the
// presentation layer.
func UserNotice(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		detail := strings.TrimPrefix(err.Error(), ErrValidation.Error()+": ")
		return capitalize(detail) + "."
	case errors.Is(err, ErrInvalidCredentials):
		return "Wrong email, phone or password."
	case errors.Is(err, ErrInvalidOTP):
		return "The code is wrong or has expired."
	case errors.Is(err, ErrConflict):
		return "An account with this email or phone already exists."
	case errors.Is(err, ErrExpiredState):
		return "This action is not available right now."
	case errors.Is(err, ErrSessionExpired):
		return "Your session has expired. Please log in again."
	case errors.Is(err, ErrSuperseded):
		return ""
	case errors.Is(err, ErrNoClimateData):
		return "Select a location first."
	case errors.Is(err, ErrTransport):
		return "The service is unavailable. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
