// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration shared by the server and
// the client binaries. It is populated by merging environment variables,
// command-line flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, OTP, version and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the server database, the climate cache and the client's
	// local session database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and the inbound request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the server API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// LLM holds the completion service used by the chat relay.
	LLM LLM `envPrefix:"LLM_"`

	// Kafka holds the assessment event publisher settings. Publishing is
	// disabled when no brokers are configured.
	Kafka Kafka `envPrefix:"KAFKA_"`

	// Workers holds background job intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey signs and verifies JWT tokens. Required by the server.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// OTPTTL is how long a registration OTP stays valid.
	// Env: APP_OTP_TTL
	OTPTTL time.Duration `env:"OTP_TTL"`

	// Version is reported by GET /api/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the client writes its logs.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration of all persistence backends.
type Storage struct {
	// DB is the server's PostgreSQL database.
	DB DB `envPrefix:"DB_"`

	// Cache is the server's Redis climate data cache.
	Cache Cache `envPrefix:"CACHE_"`

	// Local is the client's SQLite session database.
	Local Local `envPrefix:"LOCAL_"`
}

// DB holds connection settings for the server database.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Cache holds the Redis cache settings.
type Cache struct {
	// RedisURL is a redis:// URL. Empty disables caching.
	// Env: STORAGE_CACHE_REDIS_URL
	RedisURL string `env:"REDIS_URL"`

	// TTL bounds how long climate data stays cached.
	// Env: STORAGE_CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// Local holds the client's SQLite database settings.
type Local struct {
	// DSN is a go-sqlite3 data source name, usually a file path.
	// Env: STORAGE_LOCAL_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the REST listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the gRPC health listen address. Empty disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds the handling of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client transport settings.
type Adapter struct {
	// ServerURL is the base URL of the server API, including the /api prefix.
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout bounds every outbound client request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// LLM holds the OpenAI-compatible completion service settings.
type LLM struct {
	// BaseURL is the service root; /v1/chat/completions is appended.
	// Env: LLM_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is sent as a bearer token.
	// Env: LLM_API_KEY
	APIKey string `env:"API_KEY"`

	// Model is the model name passed with every completion request.
	// Env: LLM_MODEL
	Model string `env:"MODEL"`

	// Timeout bounds a single completion request.
	// Env: LLM_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Kafka holds the event publisher settings.
type Kafka struct {
	// Brokers is a comma separated list of host:port pairs.
	// Env: KAFKA_BROKERS
	Brokers []string `env:"BROKERS" envSeparator:","`

	// Topic receives assessment events.
	// Env: KAFKA_TOPIC
	Topic string `env:"TOPIC"`
}

// Workers holds background job intervals.
type Workers struct {
	// OTPCleanupInterval is how often the server purges expired unverified
	// registrations.
	// Env: WORKERS_OTP_CLEANUP_INTERVAL
	OTPCleanupInterval time.Duration `env:"OTP_CLEANUP_INTERVAL"`

	// RefreshInterval is how often the client refreshes the climate data of
	// the selected location. Zero disables the refresh job.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads the server configuration from the environment,
// os.Args, the JSON file and defaults, then validates it.
func GetStructuredConfig() (*StructuredConfig, error) {
	return LoadStructuredConfig(os.Args[1:])
}

// LoadStructuredConfig is GetStructuredConfig with explicit arguments.
//
// For every field the first non-zero value wins, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func LoadStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
