// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-climate-intel/internal/adapter"
	"github.com/MKhiriev/go-climate-intel/internal/app"
)

// mapAdapterError translates the adapter's transport error into a client
// error kind.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidOTP, app.MsgOTPExpired:
			return ErrInvalidOTP
		case app.MsgUserAlreadyExists:
			return ErrConflict
		}
		if msg == "" {
			msg = app.MsgInvalidDataProvided
		}
		return validationError(errors.New(strings.ToLower(msg)))

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidCredentials {
			return ErrInvalidCredentials
		}
		return ErrSessionExpired

	case errors.Is(err, adapter.ErrForbidden):
		return ErrSessionExpired

	case errors.Is(err, adapter.ErrNotFound):
		// verification of a registration purged after its OTP expired
		if msg == app.MsgUserNotFound {
			return ErrInvalidOTP
		}

	case errors.Is(err, adapter.ErrConflict):
		return ErrConflict
	}

	return fmt.Errorf("%w: %w", ErrTransport, err)
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
