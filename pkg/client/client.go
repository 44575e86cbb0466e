// Package client issues anonymous, keyed and signed requests against one
// exchange host and resolves their responses.
//
// An Authority holds the configuration fixed at construction: host,
// credentials, recvWindow and timeouts. Requests are made with the generic
// functions Get, GetKeyed, GetSigned, PostSigned and DeleteSigned, each taking a
// callback that appends the endpoint's parameters:
//
//	resp, err := client.GetSigned[spot.AccountInfo, envelope.APIError](ctx, auth, "/api/v3/account", nil)
//
// Every call performs exactly one HTTP exchange. There is no retry, cache or
// client-side rate limiting.
package client

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	httpClient "binancex/internal/http"
	"binancex/internal/signature"
	"binancex/pkg/core"
)

// Authority owns credentials and transport for one host.
type Authority struct {
	host       string
	apiKey     string
	secret     signature.Key
	recvWindow uint16
	http       *httpClient.Client
	logger     zerolog.Logger
	now        func() time.Time
}

// Option is a functional option for configuring the Authority.
type Option func(*Options)

// Options holds configuration options for the Authority.
type Options struct {
	Logger     zerolog.Logger
	HTTPClient *http.Client
	Clock      func() time.Time
}

// WithLogger returns an option that sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithHTTPClient returns an option that replaces the underlying *http.Client.
// The configured request timeout still applies.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *Options) {
		o.HTTPClient = hc
	}
}

// WithClock returns an option that sets the source of request timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		o.Clock = now
	}
}

// New creates an Authority from config. The config is copied; later changes to
// it have no effect.
func New(config *core.Config, opts ...Option) (*Authority, error) {
	if config == nil {
		return nil, errors.New("validate config: nil config")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	options := &Options{
		Logger: zerolog.Nop(),
		Clock:  time.Now,
	}
	for _, opt := range opts {
		opt(options)
	}
	logger := options.Logger.Level(config.Level())

	hc, err := httpClient.NewClient(&httpClient.Config{
		ConnectTimeout: config.ConnectTimeout,
		RequestTimeout: config.RequestTimeout,
		HTTPClient:     options.HTTPClient,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}

	a := &Authority{
		host:       config.Host,
		recvWindow: config.RecvWindow,
		http:       hc,
		logger:     logger,
		now:        options.Clock,
	}
	if config.Credentials != nil {
		a.apiKey = config.Credentials.APIKey
		a.secret = signature.NewKey(config.Credentials.SecretKey)
	}

	logger.Debug().
		Str("host", a.host).
		Str("api_key", core.MaskKey(a.apiKey)).
		Uint16("recv_window", a.recvWindow).
		Msg("request authority created")

	return a, nil
}

// Host returns the scheme and authority requests are sent to.
func (a *Authority) Host() string {
	return a.host
}

// RecvWindow returns the configured recvWindow in milliseconds.
func (a *Authority) RecvWindow() uint16 {
	return a.recvWindow
}

// CanKey reports whether keyed requests can be made.
func (a *Authority) CanKey() bool {
	return a.apiKey != ""
}

// CanSign reports whether signed requests can be made.
func (a *Authority) CanSign() bool {
	return a.apiKey != "" && !a.secret.IsZero()
}

// Close releases the underlying HTTP resources.
func (a *Authority) Close() error {
	return a.http.Close()
}
