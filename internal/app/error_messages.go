// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the server
// handlers and by the terminal client.
//
// Msg* constants are the "detail" strings written into error response
// bodies; Text* constants are success messages. The client matches details
// against them to tell apart errors that share a status code.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgIdentityRequired is returned when neither email nor phone is given.
	MsgIdentityRequired = "Email or phone required"

	// MsgUserAlreadyExists is returned when the email or phone of a
	// registration is already taken.
	MsgUserAlreadyExists = "User already exists"

	// MsgUserNotFound is returned by OTP verification for an unknown
	// identity and by authenticated calls whose user was removed.
	MsgUserNotFound = "User not found"

	// MsgInvalidOTP is returned when the submitted code does not match.
	MsgInvalidOTP = "Invalid OTP"

	// MsgOTPExpired is returned when the code matched but its TTL passed.
	MsgOTPExpired = "OTP expired"

	// MsgInvalidCredentials is returned by login for an unknown identity or a
	// wrong password.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgTokenIsExpired is returned when a bearer token is past its expiry.
	MsgTokenIsExpired = "Token expired"

	// MsgInvalidToken is returned when a bearer token is missing, malformed
	// or fails verification.
	MsgInvalidToken = "Invalid token"

	// MsgUnsupportedLanguage is returned by PUT /user/language.
	MsgUnsupportedLanguage = "Supported languages: en, ta"

	// MsgScenarioOutOfRange is returned when a scenario adjustment is outside
	// the supported bounds.
	MsgScenarioOutOfRange = "scenario change out of range"

	// MsgAIServiceError is returned when the completion service fails.
	MsgAIServiceError = "AI service error"

	// MsgInternalServerError is returned for unexpected server failures.
	MsgInternalServerError = "internal server error"

	// MsgNoUserIDProvided is returned when an authenticated handler finds no
	// user id in the request context.
	MsgNoUserIDProvided = "no user ID provided"
)

const (
	TextRegistrationSuccessful = "Registration successful. Please verify OTP."
	TextLanguageUpdated        = "Language updated"
	TextAPIName                = "Climate Intelligence Platform API"
	TextHealthy                = "healthy"
	TokenTypeBearer            = "bearer"
)
