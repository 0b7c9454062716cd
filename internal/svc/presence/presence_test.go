package presence

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/delciak/biolink/internal/configure"
	"github.com/delciak/biolink/internal/errors"
	"github.com/delciak/biolink/internal/global"
	"github.com/delciak/biolink/internal/instance"
	"github.com/delciak/biolink/internal/presence"
	"github.com/delciak/biolink/internal/testutil"
)

const testUser = "256470398961582080"

func testRecord() presence.Record {
	return presence.Record{
		User:   presence.User{ID: testUser, Username: "delciak", Nickname: "Delciak"},
		Status: presence.StatusOnline,
		Activities: []presence.Activity{
			{Type: presence.TypeCustomStatus, Name: "Custom Status", State: "hi chat"},
			{Type: presence.TypePlaying, Name: "Factorio"},
			{Type: presence.TypeWatching, Name: "YouTube"},
		},
	}
}

func testContext(t *testing.T) global.Context {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return global.New(ctx, &configure.Config{})
}

func newTestService(t *testing.T, fetch FetchFunc) instance.Presence {
	t.Helper()

	svc := New(testContext(t), Options{
		UserID:       testUser,
		PollInterval: time.Hour,
		Fetch:        fetch,
	})
	t.Cleanup(svc.Stop)

	return svc
}

func TestInitialPollPopulatesSnapshot(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, func(global.Context, string) (presence.Record, error) {
		return testRecord(), nil
	})

	snap := svc.Snapshot()

	testutil.IsNotNil(t, snap.Record, "record retained")
	testutil.Assert(t, 2, len(snap.Activities), "custom status filtered out of the carousel")
	testutil.Assert(t, 0, snap.Index, "cursor starts at the first entry")
	testutil.Assert(t, false, snap.Stale, "fresh snapshot is not stale")

	testutil.IsNotNil(t, snap.CustomStatus, "custom status surfaced separately")
	testutil.Assert(t, "hi chat", snap.CustomStatus.State, "custom status state")
}

func TestCycleWrapsBothWays(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, func(global.Context, string) (presence.Record, error) {
		return testRecord(), nil
	})

	snap := svc.Cycle(instance.CycleNext)
	testutil.Assert(t, 1, snap.Index, "next advances")

	snap = svc.Cycle(instance.CycleNext)
	testutil.Assert(t, 0, snap.Index, "next wraps to the start")

	snap = svc.Cycle(instance.CyclePrevious)
	testutil.Assert(t, 1, snap.Index, "previous wraps to the end")

	snap = svc.Cycle(instance.CycleDirection("sideways"))
	testutil.Assert(t, 1, snap.Index, "unknown direction is a no-op")
}

func TestFailedPollRetainsLastGoodRecord(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64

	svc := newTestService(t, func(global.Context, string) (presence.Record, error) {
		if calls.Add(1) == 1 {
			return testRecord(), nil
		}

		return presence.Record{}, errors.ErrUpstreamUnavailable()
	})

	svc.(*presenceInst).poll()

	snap := svc.Snapshot()
	testutil.IsNotNil(t, snap.Record, "last good record survives the outage")
	testutil.Assert(t, 2, len(snap.Activities), "carousel keeps the retained sequence")
	testutil.Assert(t, true, snap.Stale, "retained record marked stale")
	testutil.IsNotNil(t, anyOf(snap.Error), "failure cause surfaced")
}

func TestFailedPollWithoutRecordIsNotStale(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, func(global.Context, string) (presence.Record, error) {
		return presence.Record{}, errors.ErrFetchFailed()
	})

	snap := svc.Snapshot()

	if snap.Record != nil {
		t.Fatal("expected no retained record")
	}

	testutil.Assert(t, false, snap.Stale, "nothing retained, nothing stale")
	testutil.IsNotNil(t, anyOf(snap.Error), "failure cause surfaced")
}

func TestRefreshReplacesSequenceAndResetsCursor(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, func(global.Context, string) (presence.Record, error) {
		return testRecord(), nil
	})

	svc.Cycle(instance.CycleNext)

	svc.(*presenceInst).poll()

	snap := svc.Snapshot()
	testutil.Assert(t, 0, snap.Index, "refresh resets the cursor")
}

func TestStopIsIdempotent(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, func(global.Context, string) (presence.Record, error) {
		return testRecord(), nil
	})

	svc.Stop()
	svc.Stop()
}

func anyOf(s string) interface{} {
	if s == "" {
		return nil
	}

	return s
}
