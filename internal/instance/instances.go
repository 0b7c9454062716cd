package instance

type Instances struct {
	Views      Views
	Presence   Presence
	Prometheus Prometheus
	Limiter    Limiter
}
