package client

import (
	"context"
	"errors"
	"net/http"

	"binancex/pkg/core"
	"binancex/pkg/envelope"
	"binancex/pkg/query"
)

// queryCapacity is the query length reserved before endpoint parameters.
const queryCapacity = 128

// FillFunc appends parameters to an unsigned request.
type FillFunc func(*query.Builder)

// SignedFillFunc appends parameters to a signed request. A non-nil error aborts
// the request before any network I/O.
type SignedFillFunc func(*query.Builder) error

// Get sends an anonymous GET. fill may be nil.
func Get[S, E any](ctx context.Context, a *Authority, path string, fill FillFunc) (*envelope.Response[S], error) {
	q := query.New(a.host, path, queryCapacity)
	if fill != nil {
		fill(q)
	}
	return dispatch[S, E](ctx, a, core.NewRequest(http.MethodGet, q.URL()))
}

// GetKeyed sends a GET carrying the API key header but no signature.
func GetKeyed[S, E any](ctx context.Context, a *Authority, path string, fill FillFunc) (*envelope.Response[S], error) {
	if !a.CanKey() {
		return nil, core.ErrNoCredentials
	}
	q := query.New(a.host, path, queryCapacity)
	if fill != nil {
		fill(q)
	}
	req := core.NewRequest(http.MethodGet, q.URL()).SetHeader(core.HeaderAPIKey, a.apiKey)
	return dispatch[S, E](ctx, a, req)
}

// GetSigned sends a signed GET.
func GetSigned[S, E any](ctx context.Context, a *Authority, path string, fill SignedFillFunc) (*envelope.Response[S], error) {
	return signed[S, E](ctx, a, http.MethodGet, path, fill)
}

// PostSigned sends a signed POST. Parameters travel in the query string.
func PostSigned[S, E any](ctx context.Context, a *Authority, path string, fill SignedFillFunc) (*envelope.Response[S], error) {
	return signed[S, E](ctx, a, http.MethodPost, path, fill)
}

// DeleteSigned sends a signed DELETE.
func DeleteSigned[S, E any](ctx context.Context, a *Authority, path string, fill SignedFillFunc) (*envelope.Response[S], error) {
	return signed[S, E](ctx, a, http.MethodDelete, path, fill)
}

// signed appends user parameters, then recvWindow when it differs from the
// exchange default, then timestamp, and signs everything after '?'.
func signed[S, E any](ctx context.Context, a *Authority, method, path string, fill SignedFillFunc) (*envelope.Response[S], error) {
	if !a.CanSign() {
		return nil, core.ErrNoCredentials
	}

	q := query.New(a.host, path, queryCapacity+query.SignedParamsLen)
	if fill != nil {
		if err := fill(q); err != nil {
			var qe *core.QuerySerializationError
			if !errors.As(err, &qe) {
				err = &core.QuerySerializationError{Reason: "fill parameters", Err: err}
			}
			return nil, err
		}
	}
	if a.recvWindow != core.DefaultRecvWindow {
		q.AddRecvWindow(a.recvWindow)
	}
	q.AddTimestamp(a.now())
	q.Sign(a.secret)

	req := core.NewRequest(method, q.URL()).SetHeader(core.HeaderAPIKey, a.apiKey)
	return dispatch[S, E](ctx, a, req)
}

func dispatch[S, E any](ctx context.Context, a *Authority, req *core.Request) (*envelope.Response[S], error) {
	resp, err := a.http.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	result, err := envelope.Resolve[S, E](resp.StatusCode, resp.Header, resp.Body)
	if err != nil {
		a.logger.Debug().Err(err).
			Str("method", req.Method).
			Str("path", req.Path()).
			Int("status", resp.StatusCode).
			Str("kind", core.KindOf(err).String()).
			Msg("request failed")
		return nil, err
	}
	return result, nil
}
