package instance

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Prometheus interface {
	Register(r prometheus.Registerer)

	SetViewCount(count int64)
	ObserveLanyardFetch(outcome string, d time.Duration)
	IncrementPollErrors()
}
