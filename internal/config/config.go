package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the widget.
type Config struct {
	App     AppConfig
	Channel ChannelConfig
	Logger  LoggerConfig
	Auth    AuthConfig
}

// AppConfig controls the local API server.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// ChannelConfig holds the host message-channel connection values.
type ChannelConfig struct {
	Addr            string
	Password        string
	DB              int
	InboundChannel  string
	OutboundChannel string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level    string
	Encoding string
}

// AuthConfig defines local API authentication parameters.
type AuthConfig struct {
	APITokenSecret  string
	TokenTTLMinutes int
}

// Load reads configuration from environment variables, applying defaults
// where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	channelDB, err := strconv.Atoi(getEnv("CHANNEL_REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid CHANNEL_REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "helpdesk-widget"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "127.0.0.1"),
			Port:                  getEnv("APP_PORT", "8090"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Channel: ChannelConfig{
			Addr:            getEnv("CHANNEL_REDIS_ADDR", "127.0.0.1:6379"),
			Password:        os.Getenv("CHANNEL_REDIS_PASSWORD"),
			DB:              channelDB,
			InboundChannel:  getEnv("CHANNEL_INBOUND", "helpdesk:to-widget"),
			OutboundChannel: getEnv("CHANNEL_OUTBOUND", "helpdesk:to-host"),
		},
		Logger: LoggerConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			Encoding: getEnv("LOG_ENCODING", "json"),
		},
		Auth: AuthConfig{
			APITokenSecret:  getEnv("AUTH_API_TOKEN_SECRET", "dev-secret"),
			TokenTTLMinutes: getEnvAsInt("AUTH_TOKEN_TTL_MINUTES", 60),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
