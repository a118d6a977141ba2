package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses args into a partial config. Unset flags stay zero.
//
// Flags:
//
//	-a                  server HTTP address in format [host]:[port]
//	-grpc-address       gRPC health address in format [host]:[port]
//	-d                  database DSN
//	-redis              Redis URL for the climate cache
//	-cache-ttl          climate cache TTL
//	-local-dsn          client SQLite DSN
//	-c/-config          JSON config file path
//	-token-sign-key     token signing key
//	-token-issuer       token issuer name
//	-token-duration     token lifetime (e.g. "168h")
//	-otp-ttl            OTP lifetime (e.g. "10m")
//	-request-timeout    server request timeout
//	-server-url         API base URL used by the client
//	-adapter-timeout    client request timeout
//	-llm-url            completion service base URL
//	-llm-key            completion service API key
//	-llm-model          completion model name
//	-kafka-brokers      comma separated broker list
//	-kafka-topic        assessment event topic
//	-otp-cleanup        OTP cleanup interval
//	-refresh            client climate refresh interval
//	-log-level          zerolog level name
//	-log-file           client log file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("climate-intel", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		serverAddress, grpcAddress NetAddress
		cfg                        StructuredConfig
		kafkaBrokers               string
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC health address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.Cache.RedisURL, "redis", "", "Redis URL")
	fs.DurationVar(&cfg.Storage.Cache.TTL, "cache-ttl", 0, "Climate cache TTL")
	fs.StringVar(&cfg.Storage.Local.DSN, "local-dsn", "", "Client SQLite DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 168h)")
	fs.DurationVar(&cfg.App.OTPTTL, "otp-ttl", 0, "OTP lifetime (e.g., 10m)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Server request timeout")
	fs.StringVar(&cfg.Adapter.ServerURL, "server-url", "", "API base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "adapter-timeout", 0, "Client request timeout")
	fs.StringVar(&cfg.LLM.BaseURL, "llm-url", "", "Completion service base URL")
	fs.StringVar(&cfg.LLM.APIKey, "llm-key", "", "Completion service API key")
	fs.StringVar(&cfg.LLM.Model, "llm-model", "", "Completion model")
	fs.StringVar(&kafkaBrokers, "kafka-brokers", "", "Comma separated Kafka brokers")
	fs.StringVar(&cfg.Kafka.Topic, "kafka-topic", "", "Assessment event topic")
	fs.DurationVar(&cfg.Workers.OTPCleanupInterval, "otp-cleanup", 0, "OTP cleanup interval")
	fs.DurationVar(&cfg.Workers.RefreshInterval, "refresh", 0, "Client refresh interval")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcAddress.String()
	cfg.Kafka.Brokers = splitList(kafkaBrokers)

	return &cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// An unset address is the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost" or an IP address and the
// port a positive integer.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be within 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
