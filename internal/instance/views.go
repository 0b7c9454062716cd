package instance

// Views is the process-wide page-view counter. It is approximate and
// non-durable: the value resets with the process, and increments are only
// deduplicated within the cooldown window.
type Views interface {
	// Read returns the current count with no side effects.
	Read() int64

	// Increment counts a visit unless the presented token, or the ledger
	// entry for the visitor key, shows one within the cooldown window.
	// A fresh token is returned only when the visit was counted. Internal
	// faults never surface; the best-known count is always returned.
	Increment(token string, visitor string) (count int64, newToken string, counted bool)
}
