package spot

import (
	"fmt"
	"strconv"

	"github.com/bytedance/sonic"
)

// DepthLimit is the number of order book levels requested. The enumerated
// values are the ones the exchange documents; any other value is a custom
// limit and is sent as is. Limits above 5000 are truncated by the exchange.
type DepthLimit uint16

// Enumerated depth limits.
const (
	DepthLimit100  DepthLimit = 100
	DepthLimit500  DepthLimit = 500
	DepthLimit1000 DepthLimit = 1000
	DepthLimit5000 DepthLimit = 5000
)

// DefaultDepthLimit is used when no limit is given.
const DefaultDepthLimit = DepthLimit100

// IsCustom reports whether d is not one of the enumerated limits.
func (d DepthLimit) IsCustom() bool {
	switch d {
	case DepthLimit100, DepthLimit500, DepthLimit1000, DepthLimit5000:
		return false
	default:
		return true
	}
}

// Weight returns the request weight of a depth call with this limit.
func (d DepthLimit) Weight() RequestWeight {
	switch {
	case d == 0:
		return Weight0
	case d <= 100:
		return Weight1
	case d <= 500:
		return Weight5
	case d <= 1000:
		return Weight10
	default:
		return Weight50
	}
}

func (d DepthLimit) String() string {
	if d.IsCustom() {
		return fmt.Sprintf("DepthLimit(%d)", uint16(d))
	}
	return "DepthLimit" + strconv.FormatUint(uint64(d), 10)
}

// UnmarshalJSON implements json.Unmarshaler. Any uint16 is accepted.
func (d *DepthLimit) UnmarshalJSON(data []byte) error {
	var v uint16
	if err := sonic.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("depth limit: %w", err)
	}
	*d = DepthLimit(v)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d DepthLimit) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(d), 10), nil
}

// RequestWeight is the weight an endpoint call counts against the IP limit.
type RequestWeight uint8

// Request weights of the depth endpoint.
const (
	Weight0  RequestWeight = 0
	Weight1  RequestWeight = 1
	Weight5  RequestWeight = 5
	Weight10 RequestWeight = 10
	Weight50 RequestWeight = 50
)

// KlineInterval is a candlestick interval.
type KlineInterval string

// Kline intervals.
const (
	Interval1s  KlineInterval = "1s"
	Interval1m  KlineInterval = "1m"
	Interval3m  KlineInterval = "3m"
	Interval5m  KlineInterval = "5m"
	Interval15m KlineInterval = "15m"
	Interval30m KlineInterval = "30m"
	Interval1h  KlineInterval = "1h"
	Interval2h  KlineInterval = "2h"
	Interval4h  KlineInterval = "4h"
	Interval6h  KlineInterval = "6h"
	Interval8h  KlineInterval = "8h"
	Interval12h KlineInterval = "12h"
	Interval1d  KlineInterval = "1d"
	Interval3d  KlineInterval = "3d"
	Interval1w  KlineInterval = "1w"
	Interval1M  KlineInterval = "1M"
)

// ParseKlineInterval validates s as a kline interval.
func ParseKlineInterval(s string) (KlineInterval, error) {
	switch i := KlineInterval(s); i {
	case Interval1s, Interval1m, Interval3m, Interval5m, Interval15m, Interval30m,
		Interval1h, Interval2h, Interval4h, Interval6h, Interval8h, Interval12h,
		Interval1d, Interval3d, Interval1w, Interval1M:
		return i, nil
	default:
		return "", fmt.Errorf("unknown kline interval %q", s)
	}
}
