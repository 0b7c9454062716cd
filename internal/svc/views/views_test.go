package views

import (
	"testing"
	"time"

	"github.com/delciak/biolink/internal/testutil"
)

func newTestCounter(cooldown time.Duration) *viewsInst {
	return New(Options{
		Cooldown:  cooldown,
		JWTSecret: "test-secret",
	}).(*viewsInst)
}

func TestIncrementWithoutToken(t *testing.T) {
	t.Parallel()

	v := newTestCounter(time.Minute)

	count, token, counted := v.Increment("", "")
	testutil.Assert(t, int64(1), count, "first visit counted")
	testutil.Assert(t, true, counted, "counted flag")
	testutil.IsNotNil(t, anyOf(token), "fresh token minted")
}

func TestIncrementWithinCooldownNotCounted(t *testing.T) {
	t.Parallel()

	v := newTestCounter(time.Minute)

	_, token, _ := v.Increment("", "")

	count, fresh, counted := v.Increment(token, "")
	testutil.Assert(t, int64(1), count, "second visit inside cooldown not counted")
	testutil.Assert(t, false, counted, "counted flag")
	testutil.Assert(t, "", fresh, "no new token inside cooldown")
}

func TestIncrementAfterCooldownCounted(t *testing.T) {
	t.Parallel()

	v := newTestCounter(time.Millisecond * 20)

	_, token, _ := v.Increment("", "")

	time.Sleep(time.Millisecond * 40)

	count, fresh, counted := v.Increment(token, "")
	testutil.Assert(t, int64(2), count, "visit after cooldown counted")
	testutil.Assert(t, true, counted, "counted flag")
	testutil.IsNotNil(t, anyOf(fresh), "fresh token returned")

	if fresh == token {
		t.Fatal("expected a new token after a counted visit")
	}
}

func TestIncrementGarbageTokenAbsorbed(t *testing.T) {
	t.Parallel()

	v := newTestCounter(time.Minute)

	count, fresh, counted := v.Increment("not-a-jwt", "")
	testutil.Assert(t, int64(0), count, "fault degrades to best-known count")
	testutil.Assert(t, false, counted, "unreadable token is not counted")
	testutil.Assert(t, "", fresh, "no token on fault")
}

func TestIncrementForeignSignatureAbsorbed(t *testing.T) {
	t.Parallel()

	other := newTestCounter(time.Minute)
	_, foreign, _ := other.Increment("", "")

	v := newTestCounter(time.Minute)
	v.secret = []byte("different-secret")

	count, _, counted := v.Increment(foreign, "")
	testutil.Assert(t, int64(0), count, "foreign signature absorbed")
	testutil.Assert(t, false, counted, "foreign token not counted")
}

func TestVisitorLedgerBlocksReplay(t *testing.T) {
	t.Parallel()

	v := newTestCounter(time.Minute)

	count, _, counted := v.Increment("", "203.0.113.7")
	testutil.Assert(t, int64(1), count, "first visit counted")
	testutil.Assert(t, true, counted, "counted flag")

	// Same visitor, cookie discarded.
	count, _, counted = v.Increment("", "203.0.113.7")
	testutil.Assert(t, int64(1), count, "ledger blocks the cookieless replay")
	testutil.Assert(t, false, counted, "counted flag")

	count, _, counted = v.Increment("", "203.0.113.8")
	testutil.Assert(t, int64(2), count, "different visitor counted")
	testutil.Assert(t, true, counted, "counted flag")
}

func TestReadHasNoSideEffects(t *testing.T) {
	t.Parallel()

	v := newTestCounter(time.Minute)
	v.Increment("", "")

	testutil.Assert(t, int64(1), v.Read(), "read returns the count")
	testutil.Assert(t, int64(1), v.Read(), "repeated reads do not change the count")
}

// anyOf boxes a string so empty strings show up as nil-check failures.
func anyOf(s string) interface{} {
	if s == "" {
		return nil
	}

	return s
}
