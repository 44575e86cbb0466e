// Package http performs the exchange's HTTP round trips on top of resty.
//
// The client sends a fully built URL as is and never adds or reorders query
// parameters. Automatic retries are disabled.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	nethttp "net/http"
	"net/url"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"resty.dev/v3"

	"binancex/pkg/core"
)

// Client executes requests and hands back the raw status, headers and body.
type Client struct {
	client *resty.Client
	logger zerolog.Logger
	mu     sync.RWMutex
	closed bool
}

// Config configures a Client.
type Config struct {
	ConnectTimeout time.Duration     `validate:"min=1ms"`
	RequestTimeout time.Duration     `validate:"min=1ms"`
	Headers        map[string]string `validate:"omitempty"`
	// HTTPClient replaces the default client. Its Timeout is overwritten by RequestTimeout.
	HTTPClient *nethttp.Client `validate:"-"`
}

// Response is a completed HTTP exchange.
type Response struct {
	StatusCode int
	Header     nethttp.Header
	Body       []byte
}

// IsSuccess returns true for 2xx status codes.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true for 4xx and 5xx status codes.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}

// NewClient validates config and builds a client. The connect timeout bounds
// dialing and the TLS handshake; the request timeout bounds the whole call.
func NewClient(config *Config, logger zerolog.Logger) (*Client, error) {
	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	hc := config.HTTPClient
	if hc == nil {
		dialer := &net.Dialer{Timeout: config.ConnectTimeout}
		hc = &nethttp.Client{
			Transport: &nethttp.Transport{
				Proxy:               nethttp.ProxyFromEnvironment,
				DialContext:         dialer.DialContext,
				TLSHandshakeTimeout: config.ConnectTimeout,
				ForceAttemptHTTP2:   true,
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	client := resty.NewWithClient(hc)
	client.SetTimeout(config.RequestTimeout)
	client.SetRetryCount(0)
	client.AddContentTypeEncoder("application/json", func(w io.Writer, v any) error {
		data, err := sonic.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	})
	client.AddContentTypeDecoder("application/json", func(r io.Reader, v any) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		return sonic.Unmarshal(data, v)
	})

	for k, v := range config.Headers {
		client.SetHeader(k, v)
	}

	client.AddRequestMiddleware(func(_ *resty.Client, req *resty.Request) error {
		logger.Debug().
			Str("method", req.Method).
			Str("url", core.StripQuery(req.URL)).
			Msg("http request")
		return nil
	})

	return &Client{
		client: client,
		logger: logger,
	}, nil
}

// Do sends req and returns the response whatever its status. Only failures to
// complete the exchange are errors, wrapped in *core.TransportError.
func (c *Client) Do(ctx context.Context, req *core.Request) (*Response, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil, core.ErrClientClosed
	}

	r := c.client.R().SetContext(ctx)
	for k, v := range req.Headers {
		r.SetHeader(k, v)
	}

	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		var ue *url.Error
		if errors.As(err, &ue) {
			ue.URL = core.StripQuery(ue.URL)
		}
		c.logger.Error().Err(err).
			Str("method", req.Method).
			Str("path", req.Path()).
			Msg("http request failed")
		return nil, &core.TransportError{Method: req.Method, Path: req.Path(), Err: err}
	}

	body := resp.Bytes()
	c.logger.Debug().
		Str("method", req.Method).
		Str("path", req.Path()).
		Int("status", resp.StatusCode()).
		Int("size", len(body)).
		Msg("http response")

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       body,
	}, nil
}

// Close releases idle connections. It is safe to call more than once.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.client.Close()
}
