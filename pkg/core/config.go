package core

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Defaults applied by DefaultConfig.
const (
	// DefaultRecvWindow is the recvWindow the exchange assumes when none is sent, in milliseconds.
	DefaultRecvWindow uint16 = 5000
	// DefaultConnectTimeout bounds establishing the TCP/TLS connection.
	DefaultConnectTimeout = 5 * time.Second
	// DefaultRequestTimeout bounds the whole request including reading the body.
	DefaultRequestTimeout = 5 * time.Second
)

// Credentials holds API authentication credentials for the exchange.
type Credentials struct {
	// APIKey is the public API key identifier sent in the X-MBX-APIKEY header.
	APIKey string `json:"api_key"`
	// SecretKey signs requests. It is never serialized or logged.
	SecretKey string `json:"-"`
}

// String masks the credentials so they can be safely printed.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{APIKey:%s, SecretKey:****}", MaskKey(c.APIKey))
}

// MaskKey keeps the first and last four characters of a key.
func MaskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}

// Config contains the settings fixed at construction of a request authority.
// None of them can change per call.
type Config struct {
	// Host is the scheme and authority prefixed to every request path.
	Host        string       `json:"host" validate:"required,url"`
	Credentials *Credentials `json:"credentials,omitempty"`

	// RecvWindow is sent with signed requests only when it differs from DefaultRecvWindow.
	RecvWindow uint16 `json:"recv_window" validate:"min=1,max=60000"`

	ConnectTimeout time.Duration `json:"connect_timeout" validate:"min=1ms"`
	RequestTimeout time.Duration `json:"request_timeout" validate:"min=1ms"`

	LogLevel string `json:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns a Config for host with a 5000ms recvWindow and
// 5s connect and request timeouts.
func DefaultConfig(host string) *Config {
	return &Config{
		Host:           host,
		RecvWindow:     DefaultRecvWindow,
		ConnectTimeout: DefaultConnectTimeout,
		RequestTimeout: DefaultRequestTimeout,
		LogLevel:       "info",
	}
}

var validate = validator.New()

// Validate checks the config against its field constraints.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// Level returns the zerolog level for LogLevel, defaulting to info.
func (c *Config) Level() zerolog.Level {
	if c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// HasCredentials reports whether an API key is configured.
func (c *Config) HasCredentials() bool {
	return c.Credentials != nil && c.Credentials.APIKey != ""
}

// WithCredentials sets the API credentials and returns the config for chaining.
func (c *Config) WithCredentials(apiKey, secretKey string) *Config {
	c.Credentials = &Credentials{APIKey: apiKey, SecretKey: secretKey}
	return c
}

// WithRecvWindow sets the recvWindow in milliseconds and returns the config for chaining.
func (c *Config) WithRecvWindow(ms uint16) *Config {
	c.RecvWindow = ms
	return c
}

// WithTimeouts sets the connect and request timeouts and returns the config for chaining.
func (c *Config) WithTimeouts(connect, request time.Duration) *Config {
	c.ConnectTimeout = connect
	c.RequestTimeout = request
	return c
}

// WithLogLevel sets the log level and returns the config for chaining.
func (c *Config) WithLogLevel(level string) *Config {
	c.LogLevel = level
	return c
}
