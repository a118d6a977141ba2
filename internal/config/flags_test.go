package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{"empty address", NetAddress{}, ""},
		{"localhost with port", NetAddress{Host: "localhost", Port: 8080}, "localhost:8080"},
		{"IP address with port", NetAddress{Host: "127.0.0.1", Port: 9090}, "127.0.0.1:9090"},
		{"only port no host", NetAddress{Port: 8080}, ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    NetAddress
	}{
		{"localhost", "localhost:8001", false, NetAddress{Host: "localhost", Port: 8001}},
		{"ipv4", "0.0.0.0:80", false, NetAddress{Host: "0.0.0.0", Port: 80}},
		{"ipv6", "[::1]:8080", false, NetAddress{Host: "::1", Port: 8080}},
		{"empty host", ":9090", false, NetAddress{Port: 9090}},
		{"no port", "localhost", true, NetAddress{}},
		{"non numeric port", "localhost:http", true, NetAddress{}},
		{"zero port", "localhost:0", true, NetAddress{}},
		{"port too large", "localhost:70000", true, NetAddress{}},
		{"hostname", "example.com:80", true, NetAddress{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "localhost:8080",
		"-grpc-address", "127.0.0.1:9090",
		"-d", "postgres://localhost/db",
		"-redis", "redis://localhost:6379",
		"-cache-ttl", "15m",
		"-local-dsn", "session.db",
		"-config", "/etc/climate.json",
		"-token-sign-key", "sign",
		"-token-issuer", "iss",
		"-token-duration", "2h",
		"-otp-ttl", "3m",
		"-request-timeout", "20s",
		"-server-url", "http://localhost:8080/api",
		"-adapter-timeout", "5s",
		"-llm-url", "http://llm",
		"-llm-key", "key",
		"-llm-model", "model",
		"-kafka-brokers", "k1:9092, k2:9092,",
		"-kafka-topic", "topic",
		"-otp-cleanup", "1m",
		"-refresh", "30s",
		"-log-level", "info",
		"-log-file", "/tmp/client.log",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://localhost/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "redis://localhost:6379", cfg.Storage.Cache.RedisURL)
	assert.Equal(t, 15*time.Minute, cfg.Storage.Cache.TTL)
	assert.Equal(t, "session.db", cfg.Storage.Local.DSN)
	assert.Equal(t, "/etc/climate.json", cfg.JSONFilePath)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, "iss", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 3*time.Minute, cfg.App.OTPTTL)
	assert.Equal(t, "http://localhost:8080/api", cfg.Adapter.ServerURL)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "http://llm", cfg.LLM.BaseURL)
	assert.Equal(t, "key", cfg.LLM.APIKey)
	assert.Equal(t, "model", cfg.LLM.Model)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "topic", cfg.Kafka.Topic)
	assert.Equal(t, time.Minute, cfg.Workers.OTPCleanupInterval)
	assert.Equal(t, 30*time.Second, cfg.Workers.RefreshInterval)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "/tmp/client.log", cfg.App.LogFile)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-nope"}},
		{"bad address", []string{"-a", "nowhere"}},
		{"bad duration", []string{"-otp-ttl", "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags(tt.args)
			assert.Error(t, err)
		})
	}
}
