// Package futures holds the types shared by the USDⓈ-M perpetual and COIN-M
// delivery futures APIs.
package futures

import (
	"fmt"
	"strconv"

	"github.com/bytedance/sonic"

	"binancex/pkg/core"
)

// DepthLimit is the number of order book levels requested. Unlike spot, only
// the enumerated values are accepted.
type DepthLimit uint16

// Depth limits.
const (
	DepthLimit5    DepthLimit = 5
	DepthLimit10   DepthLimit = 10
	DepthLimit20   DepthLimit = 20
	DepthLimit50   DepthLimit = 50
	DepthLimit100  DepthLimit = 100
	DepthLimit500  DepthLimit = 500
	DepthLimit1000 DepthLimit = 1000
)

// DefaultDepthLimit is the exchange default.
const DefaultDepthLimit = DepthLimit500

// RequestWeight is the weight a depth call counts against the IP limit.
type RequestWeight uint8

// Depth request weights.
const (
	Weight2  RequestWeight = 2
	Weight5  RequestWeight = 5
	Weight10 RequestWeight = 10
	Weight20 RequestWeight = 20
)

// ParseDepthLimit returns the DepthLimit for n, or an error if n is not an
// enumerated limit.
func ParseDepthLimit(n uint16) (DepthLimit, error) {
	d := DepthLimit(n)
	if !d.Valid() {
		return 0, fmt.Errorf("futures: invalid depth limit %d", n)
	}
	return d, nil
}

// Check returns a *core.QuerySerializationError when d cannot be sent.
func (d DepthLimit) Check() error {
	if d.Valid() {
		return nil
	}
	return &core.QuerySerializationError{Field: "limit", Reason: "unsupported depth limit " + strconv.FormatUint(uint64(d), 10)}
}

// Valid reports whether d is one of the enumerated limits.
func (d DepthLimit) Valid() bool {
	switch d {
	case DepthLimit5, DepthLimit10, DepthLimit20, DepthLimit50,
		DepthLimit100, DepthLimit500, DepthLimit1000:
		return true
	default:
		return false
	}
}

// Weight returns the request weight of a depth call with this limit.
func (d DepthLimit) Weight() RequestWeight {
	switch {
	case d <= DepthLimit50:
		return Weight2
	case d <= DepthLimit100:
		return Weight5
	case d <= DepthLimit500:
		return Weight10
	default:
		return Weight20
	}
}

func (d DepthLimit) String() string {
	if !d.Valid() {
		return fmt.Sprintf("DepthLimit(%d)", uint16(d))
	}
	return "DepthLimit" + strconv.FormatUint(uint64(d), 10)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DepthLimit) UnmarshalJSON(data []byte) error {
	var n uint16
	if err := sonic.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("futures: depth limit: %w", err)
	}
	v, err := ParseDepthLimit(n)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d DepthLimit) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("futures: invalid depth limit %d", uint16(d))
	}
	return strconv.AppendUint(nil, uint64(d), 10), nil
}
