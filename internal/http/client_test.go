package http

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binancex/pkg/core"
)

func testConfig() *Config {
	return &Config{
		ConnectTimeout: time.Second,
		RequestTimeout: 2 * time.Second,
	}
}

func TestNewClient(t *testing.T) {
	client, err := NewClient(testConfig(), zerolog.Nop())

	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewClient_InvalidConfig(t *testing.T) {
	_, err := NewClient(&Config{}, zerolog.Nop())

	assert.Error(t, err)
}

func TestClient_DoKeepsQueryOrder(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodGet, r.Method)
		assert.Equal(t, "/api/v3/depth", r.URL.Path)
		assert.Equal(t, "symbol=BTCUSDT&limit=5&a=1", r.URL.RawQuery)
		assert.Equal(t, "key", r.Header.Get(core.HeaderAPIKey))
		w.Header().Set("X-MBX-USED-WEIGHT", "7")
		w.WriteHeader(nethttp.StatusOK)
		w.Write([]byte(`{"lastUpdateId":1}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(), zerolog.Nop())
	require.NoError(t, err)

	req := core.NewRequest(nethttp.MethodGet, server.URL+"/api/v3/depth?symbol=BTCUSDT&limit=5&a=1").
		SetHeader(core.HeaderAPIKey, "key")
	resp, err := client.Do(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.True(t, resp.IsSuccess())
	assert.False(t, resp.IsError())
	assert.Equal(t, "7", resp.Header.Get("x-mbx-used-weight"))
	assert.JSONEq(t, `{"lastUpdateId":1}`, string(resp.Body))
}

func TestClient_DoReturnsErrorStatus(t *testing.T) {
	for _, method := range []string{nethttp.MethodPost, nethttp.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
				assert.Equal(t, method, r.Method)
				w.WriteHeader(nethttp.StatusBadRequest)
				w.Write([]byte(`{"code":-1102,"msg":"missing"}`))
			}))
			defer server.Close()

			client, err := NewClient(testConfig(), zerolog.Nop())
			require.NoError(t, err)

			resp, err := client.Do(context.Background(), core.NewRequest(method, server.URL+"/api/v3/order"))

			require.NoError(t, err)
			assert.Equal(t, 400, resp.StatusCode)
			assert.True(t, resp.IsError())
		})
	}
}

func TestClient_DoTransportError(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {}))
	url := server.URL
	server.Close()

	client, err := NewClient(testConfig(), zerolog.Nop())
	require.NoError(t, err)

	_, err = client.Do(context.Background(), core.NewRequest(nethttp.MethodGet, url+"/x?signature=abc"))

	require.Error(t, err)
	var te *core.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, url+"/x", te.Path)
	assert.Equal(t, core.KindTransport, core.KindOf(err))
}

func TestClient_DoRequestTimeout(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client, err := NewClient(&Config{ConnectTimeout: time.Second, RequestTimeout: 20 * time.Millisecond}, zerolog.Nop())
	require.NoError(t, err)

	_, err = client.Do(context.Background(), core.NewRequest(nethttp.MethodGet, server.URL))

	assert.Equal(t, core.KindTransport, core.KindOf(err))
}

func TestClient_Close(t *testing.T) {
	client, err := NewClient(testConfig(), zerolog.Nop())
	require.NoError(t, err)

	assert.NoError(t, client.Close())
	assert.NoError(t, client.Close())

	_, err = client.Do(context.Background(), core.NewRequest(nethttp.MethodGet, "http://localhost"))
	assert.ErrorIs(t, err, core.ErrClientClosed)
}
