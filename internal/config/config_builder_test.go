package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{Version: "9.9.9", TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

func TestWithDefaults_FillsOnlyZeroFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{OTPTTL: time.Minute}})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.App.OTPTTL)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DefaultServerURL, cfg.Adapter.ServerURL)
	assert.Equal(t, DefaultKafkaTopic, cfg.Kafka.Topic)
}

func TestWithJSON_PathFromFlags(t *testing.T) {
	setEnvVars(t, nil)
	path := writeTempJSONConfig(t, map[string]any{
		"app":    map[string]any{"token_sign_key": "from-json", "token_issuer": "json-iss"},
		"server": map[string]any{"http_address": "localhost:9999"},
	})

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-c", path, "-token-issuer", "flag-iss"}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "from-json", cfg.App.TokenSignKey)
	assert.Equal(t, "flag-iss", cfg.App.TokenIssuer)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
}

func TestWithJSON_MissingFileIsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/not/here.json"})

	_, err := b.withJSON().build()
	assert.Error(t, err)
}

func TestLoadStructuredConfig(t *testing.T) {
	t.Run("env beats flags", func(t *testing.T) {
		setEnvVars(t, map[string]string{
			"APP_TOKEN_SIGN_KEY":      "env-key",
			"STORAGE_DB_DATABASE_URI": "postgres://env/db",
		})

		cfg, err := LoadStructuredConfig([]string{"-token-sign-key", "flag-key"})
		require.NoError(t, err)
		assert.Equal(t, "env-key", cfg.App.TokenSignKey)
		assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
		assert.Equal(t, DefaultOTPTTL, cfg.App.OTPTTL)
	})

	t.Run("missing sign key", func(t *testing.T) {
		setEnvVars(t, map[string]string{"STORAGE_DB_DATABASE_URI": "postgres://env/db"})

		_, err := LoadStructuredConfig(nil)
		assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	})

	t.Run("missing dsn", func(t *testing.T) {
		setEnvVars(t, nil)

		_, err := LoadStructuredConfig([]string{"-token-sign-key", "k"})
		assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	})

	t.Run("bad flag", func(t *testing.T) {
		setEnvVars(t, nil)

		_, err := LoadStructuredConfig([]string{"-unknown"})
		assert.Error(t, err)
	})
}

func TestLoadClientConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setEnvVars(t, nil)

		cfg, err := LoadClientConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultServerURL, cfg.Adapter.ServerURL)
		assert.Equal(t, DefaultAdapterTimeout, cfg.Adapter.RequestTimeout)
		assert.Equal(t, DefaultLocalDSN, cfg.Storage.DSN)
		assert.Zero(t, cfg.Workers.RefreshInterval)
	})

	t.Run("overrides", func(t *testing.T) {
		setEnvVars(t, map[string]string{"ADAPTER_SERVER_URL": "http://remote:8001/api"})

		cfg, err := LoadClientConfig([]string{"-refresh", "1m", "-local-dsn", "x.db"})
		require.NoError(t, err)
		assert.Equal(t, "http://remote:8001/api", cfg.Adapter.ServerURL)
		assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
		assert.Equal(t, "x.db", cfg.Storage.DSN)
	})

	t.Run("invalid server url", func(t *testing.T) {
		setEnvVars(t, map[string]string{"ADAPTER_SERVER_URL": "not a url"})

		_, err := LoadClientConfig(nil)
		assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
	})
}
