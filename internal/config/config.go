// Package config provides configuration management for the application.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	Logging    LoggingConfig
	Validation ValidationConfig
	Seed       SeedConfig
	Metrics    MetricsConfig
	RabbitMQ   RabbitMQConfig
}

// ServerConfig contains HTTP server configuration.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type ServerConfig struct {
	Host            string
	Port            int
	Mode            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Address returns the host:port the server listens on.
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// CORSConfig contains the cross-origin policy for the frontend dev servers.
type CORSConfig struct {
	AllowedOrigins []string
	MaxAge         time.Duration
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level string
	File  string
}

// ValidationConfig holds length limits for write requests. Zero disables a limit.
type ValidationConfig struct {
	MaxTitleLength       int
	MaxDescriptionLength int
	MaxCommentLength     int
}

// SeedConfig controls the sample catalog loaded at startup.
type SeedConfig struct {
	Enabled bool
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool
	Path    string
}

// RabbitMQConfig contains RabbitMQ connection and exchange configuration for activity events.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type RabbitMQConfig struct {
	Enabled        bool
	Host           string
	User           string
	Password       string
	Exchange       string
	Queue          string
	RoutingKey     string
	Port           int
	PublishTimeout time.Duration
}

// URL returns the AMQP connection URL.
func (r RabbitMQConfig) URL() string {
	return fmt.Sprintf("amqp://%s:%s@%s/", r.User, r.Password, net.JoinHostPort(r.Host, strconv.Itoa(r.Port)))
}

// DefaultAllowedOrigins are the local frontend dev servers.
var DefaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:3001",
}

// Load loads configuration from an optional .env file, an optional config file and
// APP_-prefixed environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// A comma-separated APP_CORS_ALLOWEDORIGINS arrives as a single element.
	cfg.CORS.AllowedOrigins = splitList(cfg.CORS.AllowedOrigins)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports configuration that would prevent the server from starting.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d: must be between 1 and 65535", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid server mode %q: must be debug, release or test", c.Server.Mode)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid shutdown timeout %s", c.Server.ShutdownTimeout)
	}
	if c.RabbitMQ.Enabled && c.RabbitMQ.Host == "" {
		return errors.New("rabbitmq is enabled but rabbitmq.host is empty")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("invalid metrics path %q: must start with /", c.Metrics.Path)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 5328)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.readtimeout", 15*time.Second)
	v.SetDefault("server.writetimeout", 15*time.Second)
	v.SetDefault("server.idletimeout", 60*time.Second)
	v.SetDefault("server.shutdowntimeout", 10*time.Second)

	// CORS
	v.SetDefault("cors.allowedorigins", DefaultAllowedOrigins)
	v.SetDefault("cors.maxage", 12*time.Hour)

	// Logging
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")

	// Validation
	v.SetDefault("validation.maxtitlelength", 200)
	v.SetDefault("validation.maxdescriptionlength", 5000)
	v.SetDefault("validation.maxcommentlength", 5000)

	// Seed
	v.SetDefault("seed.enabled", true)

	// Metrics
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	// RabbitMQ
	v.SetDefault("rabbitmq.enabled", false)
	v.SetDefault("rabbitmq.host", "localhost")
	v.SetDefault("rabbitmq.port", 5672)
	v.SetDefault("rabbitmq.user", "guest")
	v.SetDefault("rabbitmq.password", "guest")
	v.SetDefault("rabbitmq.exchange", "video.activity")
	v.SetDefault("rabbitmq.queue", "video.activity.events")
	v.SetDefault("rabbitmq.routingkey", "activity.#")
	v.SetDefault("rabbitmq.publishtimeout", 5*time.Second)
}

func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}
