package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	APIKey   APIKeyConfig
	Stripe   StripeConfig
	Webhook  WebhookConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// APIKeyConfig holds the keys accepted on internal routes, keyed by caller name
type APIKeyConfig struct {
	Keys map[string]string
}

// StripeConfig contains payment provider settings
type StripeConfig struct {
	SecretKey        string
	WebhookSecret    string
	WebhookTolerance time.Duration
	APIURL           string // Override for testing; empty means the SDK default
	Timeout          time.Duration
	MaxRetries       int
}

// WebhookConfig tunes the event processing pipeline
type WebhookConfig struct {
	ClaimLease        time.Duration // How long an in-flight claim blocks redeliveries
	ProcessingTimeout time.Duration
	CacheTTL          time.Duration // Lifetime of processed-event ids in Redis
	DefaultFund       string
	MaxBodyBytes      int64
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains Zap logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
