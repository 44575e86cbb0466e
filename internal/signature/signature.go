// Package signature computes the HMAC-SHA256 request signatures expected by the
// exchange for signed endpoints.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Size is the length of a hex encoded signature.
const Size = sha256.Size * 2

// Key is secret signing material. It never prints its contents.
type Key struct {
	secret []byte
}

// NewKey wraps a secret key.
func NewKey(secret string) Key {
	return Key{secret: []byte(secret)}
}

// IsZero reports whether the key holds no material.
func (k Key) IsZero() bool {
	return len(k.secret) == 0
}

// String implements fmt.Stringer without revealing the secret.
func (k Key) String() string {
	return "signature.Key(****)"
}

// GoString implements fmt.GoStringer without revealing the secret.
func (k Key) GoString() string {
	return k.String()
}

// Sign returns the lowercase hex HMAC-SHA256 of payload.
func (k Key) Sign(payload []byte) string {
	var buf [Size]byte
	k.SignTo(&buf, payload)
	return string(buf[:])
}

// SignTo writes the lowercase hex HMAC-SHA256 of payload into dst.
func (k Key) SignTo(dst *[Size]byte, payload []byte) {
	mac := hmac.New(sha256.New, k.secret)
	mac.Write(payload)
	var sum [sha256.Size]byte
	hex.Encode(dst[:], mac.Sum(sum[:0]))
}

// Sign returns hex(HMAC-SHA256(secret, payload)).
func Sign(payload, secret []byte) string {
	return Key{secret: secret}.Sign(payload)
}

// SignTo writes hex(HMAC-SHA256(secret, payload)) into dst.
func SignTo(dst *[Size]byte, payload, secret []byte) {
	Key{secret: secret}.SignTo(dst, payload)
}

// SignInto is SignTo for callers holding a slice. It panics unless len(dst) is Size.
func SignInto(dst, payload, secret []byte) {
	if len(dst) != Size {
		panic(fmt.Sprintf("signature: output buffer is %d bytes, want %d", len(dst), Size))
	}
	SignTo((*[Size]byte)(dst), payload, secret)
}
