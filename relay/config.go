package relay

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/golden-vcr/easy-hmac/rmq"
	"github.com/joho/godotenv"
)

// Config holds the settings for the relay service, loaded from environment variables
// (optionally seeded from a .env file in the working directory):
//
//   - HMAC_SHARED_SECRET: secret shared with webhook senders (required)
//   - BIND_ADDR: address to bind the HTTP server to (default: all interfaces)
//   - LISTEN_PORT: HTTP server port (default: 5000)
//   - LOG_LEVEL: debug, info, warn or error (default: info)
//   - MAX_BODY_BYTES: largest accepted webhook body (default: 1048576)
//   - RMQ_HOST, RMQ_PORT, RMQ_VHOST, RMQ_USER, RMQ_PASSWORD: RabbitMQ server
//   - RMQ_QUEUE: name of the queue deliveries are published to (default: webhooks)
//   - RMQ_QUEUE_TYPE: fanout or work (default: work)
type Config struct {
	SharedSecret string
	BindAddr     string
	ListenPort   int
	LogLevel     slog.Level
	MaxBodyBytes int64

	RmqHost      string
	RmqPort      int
	RmqVhost     string
	RmqUser      string
	RmqPassword  string
	RmqQueue     string
	RmqQueueType rmq.QueueType
}

// LoadConfig reads a .env file if one is present, then builds a Config from the
// environment. Values that are set but can't be parsed are reported as errors;
// missing values fall back to defaults. Call Validate on the result before use.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	c := &Config{
		SharedSecret: os.Getenv("HMAC_SHARED_SECRET"),
		BindAddr:     os.Getenv("BIND_ADDR"),
		RmqHost:      getenv("RMQ_HOST", "localhost"),
		RmqVhost:     os.Getenv("RMQ_VHOST"),
		RmqUser:      getenv("RMQ_USER", "guest"),
		RmqPassword:  getenv("RMQ_PASSWORD", "guest"),
		RmqQueue:     getenv("RMQ_QUEUE", "webhooks"),
	}

	var err error
	if c.ListenPort, err = getenvInt("LISTEN_PORT", 5000); err != nil {
		return nil, err
	}
	if c.RmqPort, err = getenvInt("RMQ_PORT", 5672); err != nil {
		return nil, err
	}
	maxBodyBytes, err := getenvInt("MAX_BODY_BYTES", 1<<20)
	if err != nil {
		return nil, err
	}
	c.MaxBodyBytes = int64(maxBodyBytes)
	if err := c.LogLevel.UnmarshalText([]byte(getenv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	if c.RmqQueueType, err = rmq.ParseQueueType(getenv("RMQ_QUEUE_TYPE", string(rmq.QueueTypeWork))); err != nil {
		return nil, fmt.Errorf("invalid RMQ_QUEUE_TYPE: %w", err)
	}
	return c, nil
}

// Validate reports an error if the config can't be used to run the service
func (c *Config) Validate() error {
	if c.SharedSecret == "" {
		return fmt.Errorf("HMAC_SHARED_SECRET is required")
	}
	if c.ListenPort <= 0 || c.ListenPort > 65535 {
		return fmt.Errorf("LISTEN_PORT %d is out of range", c.ListenPort)
	}
	if c.RmqPort <= 0 || c.RmqPort > 65535 {
		return fmt.Errorf("RMQ_PORT %d is out of range", c.RmqPort)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive")
	}
	if c.RmqQueue == "" {
		return fmt.Errorf("RMQ_QUEUE must not be empty")
	}
	return nil
}

// RmqConnectionString returns the amqp:// URI for the configured RabbitMQ server
func (c *Config) RmqConnectionString() string {
	return rmq.FormatConnectionString(c.RmqHost, c.RmqPort, c.RmqVhost, c.RmqUser, c.RmqPassword)
}

// Queue returns the declaration of the queue that deliveries are published to
func (c *Config) Queue() rmq.QueueDeclaration {
	return rmq.QueueDeclaration{
		Name: c.RmqQueue,
		Type: c.RmqQueueType,
	}
}

func getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	value := getenv(key, "")
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
