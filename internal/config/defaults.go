package config

import "time"

// Defaults used for every field left empty by the other sources.
const (
	DefaultHTTPAddress        = "localhost:8001"
	DefaultServerURL          = "http://localhost:8001/api"
	DefaultTokenIssuer        = "climate-intel"
	DefaultTokenDuration      = 7 * 24 * time.Hour
	DefaultOTPTTL             = 10 * time.Minute
	DefaultVersion            = "1.0.0"
	DefaultServerTimeout      = 30 * time.Second
	DefaultAdapterTimeout     = 15 * time.Second
	DefaultCacheTTL           = time.Hour
	DefaultLocalDSN           = "climate-intel.db"
	DefaultLLMBaseURL         = "https://api.openai.com"
	DefaultLLMModel           = "gpt-4o-mini"
	DefaultLLMTimeout         = 30 * time.Second
	DefaultKafkaTopic         = "climate-assessments"
	DefaultOTPCleanupInterval = 5 * time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			OTPTTL:        DefaultOTPTTL,
			Version:       DefaultVersion,
			LogLevel:      "debug",
		},
		Storage: Storage{
			Cache: Cache{TTL: DefaultCacheTTL},
			Local: Local{DSN: DefaultLocalDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultServerTimeout,
		},
		Adapter: Adapter{
			ServerURL:      DefaultServerURL,
			RequestTimeout: DefaultAdapterTimeout,
		},
		LLM: LLM{
			BaseURL: DefaultLLMBaseURL,
			Model:   DefaultLLMModel,
			Timeout: DefaultLLMTimeout,
		},
		Kafka: Kafka{Topic: DefaultKafkaTopic},
		Workers: Workers{
			OTPCleanupInterval: DefaultOTPCleanupInterval,
		},
	}
}
