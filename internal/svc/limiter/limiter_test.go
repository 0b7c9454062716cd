package limiter

import (
	"testing"
	"time"

	"github.com/delciak/biolink/internal/testutil"
)

func TestAllowCountsDown(t *testing.T) {
	t.Parallel()

	l := New()

	remaining, _, allowed := l.Allow("api", "203.0.113.7", 2, time.Minute)
	testutil.Assert(t, true, allowed, "first request allowed")
	testutil.Assert(t, int64(1), remaining, "remaining after first")

	remaining, _, allowed = l.Allow("api", "203.0.113.7", 2, time.Minute)
	testutil.Assert(t, true, allowed, "second request allowed")
	testutil.Assert(t, int64(0), remaining, "remaining after second")

	_, _, allowed = l.Allow("api", "203.0.113.7", 2, time.Minute)
	testutil.Assert(t, false, allowed, "third request over the limit")
}

func TestAllowIsolatesIdentifiersAndBuckets(t *testing.T) {
	t.Parallel()

	l := New()

	_, _, _ = l.Allow("api", "203.0.113.7", 1, time.Minute)

	_, _, allowed := l.Allow("api", "203.0.113.8", 1, time.Minute)
	testutil.Assert(t, true, allowed, "other identifier unaffected")

	_, _, allowed = l.Allow("views", "203.0.113.7", 1, time.Minute)
	testutil.Assert(t, true, allowed, "other bucket unaffected")
}

func TestAllowWindowResets(t *testing.T) {
	t.Parallel()

	l := New()

	_, _, _ = l.Allow("api", "203.0.113.7", 1, time.Millisecond*20)
	_, _, allowed := l.Allow("api", "203.0.113.7", 1, time.Millisecond*20)
	testutil.Assert(t, false, allowed, "over the limit inside the window")

	time.Sleep(time.Millisecond * 40)

	_, _, allowed = l.Allow("api", "203.0.113.7", 1, time.Millisecond*20)
	testutil.Assert(t, true, allowed, "fresh window after expiry")
}
