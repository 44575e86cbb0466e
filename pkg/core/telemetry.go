package core

import "time"

// Telemetry holds the rate-limit usage reported by the exchange in response
// headers. Each field is nil when the header was absent. The values are
// informative only; nothing in this module enforces them.
type Telemetry struct {
	// UsedWeight is x-mbx-used-weight.
	UsedWeight *uint16 `json:"used_weight,omitempty"`
	// UsedWeight1m is x-mbx-used-weight-1m.
	UsedWeight1m *uint16 `json:"used_weight_1m,omitempty"`
	// RetryAfter is retry-after, in seconds.
	RetryAfter *uint16 `json:"retry_after,omitempty"`
}

// RetryAfterDuration returns retry-after as a duration.
func (t Telemetry) RetryAfterDuration() (time.Duration, bool) {
	if t.RetryAfter == nil {
		return 0, false
	}
	return time.Duration(*t.RetryAfter) * time.Second, true
}
