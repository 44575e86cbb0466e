// Package query builds request URLs whose query string keeps parameters in
// insertion order, which signed endpoints require.
//
// A Builder is owned by a single request. Parameters are appended to one buffer
// holding host, path and query; the offset of the first byte after '?' is
// recorded so the query can be signed without copying.
//
//	q := query.New("https://api.binance.com", "/api/v3/depth", 32)
//	q.AddString("symbol", "BTCUSDT").AddUint("limit", 100)
//	q.URL() // https://api.binance.com/api/v3/depth?symbol=BTCUSDT&limit=100
package query

import (
	"net/url"
	"strconv"
	"time"

	"github.com/cockroachdb/apd/v3"

	"binancex/internal/signature"
)

// Parameter names appended by signed requests.
const (
	ParamRecvWindow = "recvWindow"
	ParamTimestamp  = "timestamp"
	ParamSignature  = "signature"
)

// SignedParamsLen is the extra capacity needed for recvWindow, timestamp and signature.
const SignedParamsLen = len("&recvWindow=65535") + len("&timestamp=") + 20 + len("&signature=") + signature.Size

type separator uint8

const (
	// noQuery: the next parameter opens the query with '?'.
	noQuery separator = iota
	// hasQuery: the next parameter is joined with '&'.
	hasQuery
)

// Builder accumulates a URL and its ordered query string.
type Builder struct {
	buf    []byte
	offset int
	sep    separator
	signed bool
}

// New creates a builder for host+path. capacity is the expected query length.
func New(host, path string, capacity int) *Builder {
	buf := make([]byte, 0, len(host)+len(path)+capacity)
	buf = append(buf, host...)
	buf = append(buf, path...)
	return &Builder{buf: buf, offset: len(buf)}
}

func (b *Builder) writeSeparator() {
	if b.signed {
		panic("query: parameter appended after signature")
	}
	switch b.sep {
	case noQuery:
		b.buf = append(b.buf, '?')
		b.offset = len(b.buf)
		b.sep = hasQuery
	default:
		b.buf = append(b.buf, '&')
	}
}

func (b *Builder) writeKey(key string) {
	b.writeSeparator()
	b.buf = append(b.buf, key...)
	b.buf = append(b.buf, '=')
}

// AddString appends key=val. val is query-escaped.
func (b *Builder) AddString(key, val string) *Builder {
	b.writeKey(key)
	b.buf = append(b.buf, url.QueryEscape(val)...)
	return b
}

// AddInt appends a signed integer in decimal.
func (b *Builder) AddInt(key string, val int64) *Builder {
	b.writeKey(key)
	b.buf = strconv.AppendInt(b.buf, val, 10)
	return b
}

// AddUint appends an unsigned integer in decimal.
func (b *Builder) AddUint(key string, val uint64) *Builder {
	b.writeKey(key)
	b.buf = strconv.AppendUint(b.buf, val, 10)
	return b
}

// AddDecimal appends val in plain notation, keeping every digit as given.
// A nil val appends nothing.
func (b *Builder) AddDecimal(key string, val *apd.Decimal) *Builder {
	if val == nil {
		return b
	}
	b.writeKey(key)
	b.buf = val.Append(b.buf, 'f')
	return b
}

// AddBool appends true or false.
func (b *Builder) AddBool(key string, val bool) *Builder {
	b.writeKey(key)
	b.buf = strconv.AppendBool(b.buf, val)
	return b
}

// AddRaw appends an already encoded chunk such as "a=1&b=2" verbatim.
func (b *Builder) AddRaw(params string) *Builder {
	b.writeSeparator()
	b.buf = append(b.buf, params...)
	return b
}

// AddRecvWindow appends recvWindow unless ms is zero.
func (b *Builder) AddRecvWindow(ms uint16) *Builder {
	if ms == 0 {
		return b
	}
	return b.AddUint(ParamRecvWindow, uint64(ms))
}

// AddTimestamp appends now as epoch milliseconds.
func (b *Builder) AddTimestamp(now time.Time) *Builder {
	return b.AddInt(ParamTimestamp, now.UnixMilli())
}

// AddSignature appends a precomputed signature and seals the builder.
func (b *Builder) AddSignature(sig string) {
	b.writeKey(ParamSignature)
	b.buf = append(b.buf, sig...)
	b.signed = true
}

// Sign signs every query byte appended so far and appends the signature as the
// final parameter. No parameter can be added afterwards.
func (b *Builder) Sign(key signature.Key) {
	var sig [signature.Size]byte
	key.SignTo(&sig, b.QueryBytes())
	b.writeKey(ParamSignature)
	b.buf = append(b.buf, sig[:]...)
	b.signed = true
}

// QueryBytes returns the query after '?' without copying. The slice is only
// valid until the next append.
func (b *Builder) QueryBytes() []byte {
	if b.sep == noQuery {
		return nil
	}
	return b.buf[b.offset:]
}

// Query returns the query after '?', or "" if no parameter was added.
func (b *Builder) Query() string {
	return string(b.QueryBytes())
}

// HasQuery reports whether any parameter was added.
func (b *Builder) HasQuery() bool {
	return b.sep == hasQuery
}

// Signed reports whether the signature has been appended.
func (b *Builder) Signed() bool {
	return b.signed
}

// URL returns host, path and query.
func (b *Builder) URL() string {
	return string(b.buf)
}

// Len returns the current URL length.
func (b *Builder) Len() int {
	return len(b.buf)
}

// Cap returns the buffer capacity.
func (b *Builder) Cap() int {
	return cap(b.buf)
}
