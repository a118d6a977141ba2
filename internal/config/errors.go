package config

import "errors"

// Validation errors returned when a required configuration group is
// incomplete.
var (
	// ErrInvalidAppConfigs indicates a missing token sign key or issuer, or a
	// non-positive token or OTP lifetime.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates a missing DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates a missing server URL or timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidLLMConfigs indicates a missing completion model or base URL.
	ErrInvalidLLMConfigs = errors.New("invalid llm configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive job interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
