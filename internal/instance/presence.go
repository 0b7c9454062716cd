package instance

import (
	"github.com/delciak/biolink/internal/presence"
)

// Presence is the background-polled presence snapshot service.
type Presence interface {
	// Snapshot returns the current aggregated state.
	Snapshot() presence.Snapshot

	// Cycle moves the carousel cursor and returns the resulting state.
	// Directions outside {next, previous} and empty sequences are no-ops.
	Cycle(direction CycleDirection) presence.Snapshot

	// Stop cancels all periodic work. Idempotent.
	Stop()
}

type CycleDirection string

const (
	CycleNext     CycleDirection = "next"
	CyclePrevious CycleDirection = "previous"
)
