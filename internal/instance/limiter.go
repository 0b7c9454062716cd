package instance

import "time"

// Limiter is a fixed-window request limiter keyed by bucket and caller
// identity.
type Limiter interface {
	Allow(bucket string, identifier string, limit int64, window time.Duration) (remaining int64, reset time.Duration, allowed bool)
}
