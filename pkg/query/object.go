package query

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/bytedance/sonic/ast"

	"binancex/pkg/core"
)

// AddObject appends every member of v in field order. v must encode as a flat
// JSON object: null members are skipped, strings are query-escaped and numbers
// and booleans are appended as written. Anything else yields a
// *core.QuerySerializationError and leaves the builder unchanged.
func (b *Builder) AddObject(v any) error {
	data, err := sonic.Marshal(v)
	if err != nil {
		return &core.QuerySerializationError{Reason: "encode parameters", Err: err}
	}
	root, err := sonic.Get(data)
	if err != nil {
		return &core.QuerySerializationError{Reason: "decode parameters", Err: err}
	}
	if root.TypeSafe() != ast.V_OBJECT {
		return &core.QuerySerializationError{Reason: fmt.Sprintf("parameters must be an object, got %s", nodeKind(root.TypeSafe()))}
	}

	it, err := root.Properties()
	if err != nil {
		return &core.QuerySerializationError{Reason: "iterate parameters", Err: err}
	}

	// Collect first so a late failure does not leave a half written query.
	type param struct {
		key, val string
		escape   bool
	}
	params := make([]param, 0, 8)

	var pair ast.Pair
	for it.Next(&pair) {
		switch t := pair.Value.TypeSafe(); t {
		case ast.V_NULL:
			continue
		case ast.V_STRING:
			s, err := pair.Value.String()
			if err != nil {
				return &core.QuerySerializationError{Field: pair.Key, Reason: "read string", Err: err}
			}
			params = append(params, param{key: pair.Key, val: s, escape: true})
		case ast.V_NUMBER, ast.V_TRUE, ast.V_FALSE:
			raw, err := pair.Value.Raw()
			if err != nil {
				return &core.QuerySerializationError{Field: pair.Key, Reason: "read value", Err: err}
			}
			params = append(params, param{key: pair.Key, val: raw})
		default:
			return &core.QuerySerializationError{Field: pair.Key, Reason: fmt.Sprintf("unsupported %s value", nodeKind(t))}
		}
	}

	for _, p := range params {
		if p.escape {
			b.AddString(p.key, p.val)
			continue
		}
		b.writeKey(p.key)
		b.buf = append(b.buf, p.val...)
	}
	return nil
}

func nodeKind(t int) string {
	switch t {
	case ast.V_NULL:
		return "null"
	case ast.V_TRUE, ast.V_FALSE:
		return "boolean"
	case ast.V_ARRAY:
		return "array"
	case ast.V_OBJECT:
		return "object"
	case ast.V_STRING:
		return "string"
	case ast.V_NUMBER:
		return "number"
	default:
		return "unknown"
	}
}
