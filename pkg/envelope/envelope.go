// Package envelope turns an HTTP response into either a typed success payload
// or a typed remote error.
//
// The exchange does not tag its bodies: a response is a success if it decodes
// as the success schema and an error if it decodes as the error schema. A
// schema matches when the body has the right JSON shape and every field tagged
// `validate:"required"` is set. Types needing exact key presence implement
// json.Unmarshaler themselves, as APIError does.
package envelope

import (
	"errors"
	"reflect"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Decode unmarshals data into a new T and checks its required fields.
func Decode[T any](data []byte) (*T, error) {
	var v T
	if err := sonic.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	if err := checkRequired(reflect.ValueOf(&v)); err != nil {
		return nil, err
	}
	return &v, nil
}

func checkRequired(rv reflect.Value) error {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		return validate.Struct(rv.Interface())
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if err := checkRequired(rv.Index(i)); err != nil {
				return err
			}
		}
	}
	return nil
}

// ErrNoMatch is returned by Envelope.UnmarshalJSON when neither schema matches.
var ErrNoMatch = errors.New("envelope: body matches neither success nor error schema")

// Envelope holds a value that is one of two untagged schemas. Success is tried
// first. Exactly one field is set after decoding, or neither for JSON null.
type Envelope[S, E any] struct {
	Success *S
	Error   *E
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Envelope[S, E]) UnmarshalJSON(data []byte) error {
	e.Success, e.Error = nil, nil
	if string(data) == "null" {
		return nil
	}
	if s, err := Decode[S](data); err == nil {
		e.Success = s
		return nil
	}
	if v, err := Decode[E](data); err == nil {
		e.Error = v
		return nil
	}
	return ErrNoMatch
}

// MarshalJSON implements json.Marshaler.
func (e Envelope[S, E]) MarshalJSON() ([]byte, error) {
	switch {
	case e.Success != nil:
		return sonic.Marshal(e.Success)
	case e.Error != nil:
		return sonic.Marshal(e.Error)
	default:
		return []byte("null"), nil
	}
}

// IsSuccess reports whether the success schema matched.
func (e Envelope[S, E]) IsSuccess() bool {
	return e.Success != nil
}

// IsError reports whether the error schema matched.
func (e Envelope[S, E]) IsError() bool {
	return e.Error != nil
}
