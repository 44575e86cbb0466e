package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binancex/internal/signature"
	"binancex/pkg/core"
	"binancex/pkg/envelope"
	"binancex/pkg/market"
	"binancex/pkg/query"
)

const (
	testKey    = "vmPUZE6mv9SD5VNHk4HlWFsOr6aKE2zvsw0MuIgwCIPy6utIco14y7Ju91duEh8A"
	testSecret = "NhqPtmdSJYdKjVHjA7PZj4Mge3R5YNiP1e3UZjInClVN65XAbvqqM6A7H5fATj0j"
)

var fixedNow = time.UnixMilli(1499827319559)

type captured struct {
	method string
	path   string
	query  string
	apiKey string
}

func newServer(t *testing.T, status int, body string) (*httptest.Server, *captured) {
	t.Helper()
	c := &captured{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.method = r.Method
		c.path = r.URL.Path
		c.query = r.URL.RawQuery
		c.apiKey = r.Header.Get(core.HeaderAPIKey)
		w.Header().Set("X-MBX-USED-WEIGHT-1M", "12")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, c
}

func newAuthority(t *testing.T, host string, configure func(*core.Config)) *Authority {
	t.Helper()
	config := core.DefaultConfig(host)
	if configure != nil {
		configure(config)
	}
	a, err := New(config, WithLogger(zerolog.Nop()), WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func withCredentials(c *core.Config) {
	c.WithCredentials(testKey, testSecret)
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(core.DefaultConfig("not a url"))
	assert.Error(t, err)

	_, err = New(core.DefaultConfig("https://api.binance.com").WithRecvWindow(0))
	assert.Error(t, err)
}

func TestGet_Anonymous(t *testing.T) {
	server, c := newServer(t, http.StatusOK, `{"serverTime":1499827319559}`)
	a := newAuthority(t, server.URL, withCredentials)

	resp, err := Get[market.ServerTime, envelope.APIError](context.Background(), a, "/api/v3/time", nil)

	require.NoError(t, err)
	assert.Equal(t, int64(1499827319559), resp.Payload.ServerTime)
	assert.Equal(t, uint16(12), *resp.Telemetry.UsedWeight1m)
	assert.Equal(t, http.MethodGet, c.method)
	assert.Equal(t, "/api/v3/time", c.path)
	assert.Empty(t, c.query)
	assert.Empty(t, c.apiKey)
}

func TestGet_ParameterOrder(t *testing.T) {
	server, c := newServer(t, http.StatusOK, `{}`)
	a := newAuthority(t, server.URL, nil)

	_, err := Get[market.Empty, envelope.APIError](context.Background(), a, "/api/v3/x", func(q *query.Builder) {
		q.AddString("z", "1").AddString("a", "2").AddString("z", "3")
	})

	require.NoError(t, err)
	assert.Equal(t, "z=1&a=2&z=3", c.query)
}

func TestGetKeyed(t *testing.T) {
	server, c := newServer(t, http.StatusOK, `{}`)
	a := newAuthority(t, server.URL, withCredentials)

	_, err := GetKeyed[market.Empty, envelope.APIError](context.Background(), a, "/api/v3/historicalTrades", func(q *query.Builder) {
		q.AddString("symbol", "BTCUSDT")
	})

	require.NoError(t, err)
	assert.Equal(t, testKey, c.apiKey)
	assert.Equal(t, "symbol=BTCUSDT", c.query)
	assert.NotContains(t, c.query, "signature")
	assert.NotContains(t, c.query, "timestamp")
}

func TestSigned_DefaultRecvWindowOmitted(t *testing.T) {
	server, c := newServer(t, http.StatusOK, `{}`)
	a := newAuthority(t, server.URL, withCredentials)

	_, err := GetSigned[market.Empty, envelope.APIError](context.Background(), a, "/api/v3/account", nil)

	require.NoError(t, err)
	payload := "timestamp=1499827319559"
	assert.Equal(t, payload+"&signature="+signature.NewKey(testSecret).Sign([]byte(payload)), c.query)
	assert.Equal(t, testKey, c.apiKey)
}

func TestSigned_CustomRecvWindowPrecedesTimestamp(t *testing.T) {
	server, c := newServer(t, http.StatusOK, `{}`)
	a := newAuthority(t, server.URL, func(cfg *core.Config) {
		withCredentials(cfg)
		cfg.WithRecvWindow(10000)
	})

	_, err := GetSigned[market.Empty, envelope.APIError](context.Background(), a, "/api/v3/openOrders", func(q *query.Builder) error {
		q.AddString("symbol", "BTCUSDT")
		return nil
	})

	require.NoError(t, err)
	payload := "symbol=BTCUSDT&recvWindow=10000&timestamp=1499827319559"
	assert.Equal(t, payload+"&signature="+signature.NewKey(testSecret).Sign([]byte(payload)), c.query)
}

func TestSigned_Methods(t *testing.T) {
	calls := []struct {
		method string
		call   func(context.Context, *Authority, string, SignedFillFunc) (*envelope.Response[market.Empty], error)
	}{
		{http.MethodGet, GetSigned[market.Empty, envelope.APIError]},
		{http.MethodPost, PostSigned[market.Empty, envelope.APIError]},
		{http.MethodDelete, DeleteSigned[market.Empty, envelope.APIError]},
	}

	for _, tt := range calls {
		t.Run(tt.method, func(t *testing.T) {
			server, c := newServer(t, http.StatusOK, `{}`)
			a := newAuthority(t, server.URL, withCredentials)

			_, err := tt.call(context.Background(), a, "/api/v3/order", func(q *query.Builder) error {
				q.AddString("symbol", "LTCBTC").AddString("side", "BUY")
				return nil
			})

			require.NoError(t, err)
			assert.Equal(t, tt.method, c.method)
			assert.True(t, strings.HasPrefix(c.query, "symbol=LTCBTC&side=BUY&timestamp=1499827319559&signature="))
			i := strings.LastIndex(c.query, "&signature=")
			assert.Equal(t, signature.NewKey(testSecret).Sign([]byte(c.query[:i])), c.query[i+len("&signature="):])
		})
	}
}

func TestSigned_NoCredentials(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hits.Add(1) }))
	defer server.Close()
	a := newAuthority(t, server.URL, nil)

	_, err := GetSigned[market.Empty, envelope.APIError](context.Background(), a, "/api/v3/account", nil)
	assert.ErrorIs(t, err, core.ErrNoCredentials)

	_, err = GetKeyed[market.Empty, envelope.APIError](context.Background(), a, "/api/v3/historicalTrades", nil)
	assert.ErrorIs(t, err, core.ErrNoCredentials)

	assert.Zero(t, hits.Load())
}

func TestSigned_FillErrorSkipsNetwork(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hits.Add(1) }))
	defer server.Close()
	a := newAuthority(t, server.URL, withCredentials)

	_, err := PostSigned[market.Empty, envelope.APIError](context.Background(), a, "/api/v3/order", func(q *query.Builder) error {
		return q.AddObject(map[string]any{"nested": map[string]int{"a": 1}})
	})
	var qe *core.QuerySerializationError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, "nested", qe.Field)

	_, err = PostSigned[market.Empty, envelope.APIError](context.Background(), a, "/api/v3/order", func(q *query.Builder) error {
		return errors.New("bad quantity")
	})
	require.ErrorAs(t, err, &qe)
	assert.EqualError(t, qe.Err, "bad quantity")

	assert.Zero(t, hits.Load())
}

func TestDispatch_RemoteError(t *testing.T) {
	server, _ := newServer(t, http.StatusTooManyRequests, `{"code":-1003,"msg":"Too much request weight used"}`)
	a := newAuthority(t, server.URL, nil)

	_, err := Get[market.Empty, envelope.APIError](context.Background(), a, "/api/v3/ping", nil)

	require.Error(t, err)
	assert.True(t, core.IsRateLimitError(err))
	status, telemetry, ok := core.RemoteTelemetry(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, uint16(12), *telemetry.UsedWeight1m)
}

func TestDispatch_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	host := server.URL
	server.Close()
	a := newAuthority(t, host, withCredentials)

	_, err := GetSigned[market.Empty, envelope.APIError](context.Background(), a, "/api/v3/account", nil)

	assert.Equal(t, core.KindTransport, core.KindOf(err))
	var te *core.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, host+"/api/v3/account", te.Path)
}

func TestAuthority_Accessors(t *testing.T) {
	a := newAuthority(t, "https://api.binance.com", withCredentials)

	assert.Equal(t, "https://api.binance.com", a.Host())
	assert.Equal(t, core.DefaultRecvWindow, a.RecvWindow())
	assert.True(t, a.CanKey())
	assert.True(t, a.CanSign())
}
