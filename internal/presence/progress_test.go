package presence

import (
	"testing"
	"time"

	"github.com/delciak/biolink/internal/testutil"
)

func TestProgressBoundedTrack(t *testing.T) {
	t.Parallel()

	now := time.Now()

	a := &Activity{Timestamps: &Timestamps{
		Start: now.UnixMilli() - 5000,
		End:   now.UnixMilli() + 5000,
	}}

	testutil.InDelta(t, 50, Progress(a, now), 0.5, "halfway through a bounded track")
}

func TestProgressBoundedClamps(t *testing.T) {
	t.Parallel()

	now := time.Now()

	past := &Activity{Timestamps: &Timestamps{
		Start: now.UnixMilli() - 20000,
		End:   now.UnixMilli() - 10000,
	}}
	testutil.Assert(t, 100.0, Progress(past, now), "finished track clamps to 100")

	future := &Activity{Timestamps: &Timestamps{
		Start: now.UnixMilli() + 10000,
		End:   now.UnixMilli() + 20000,
	}}
	testutil.Assert(t, 0.0, Progress(future, now), "unstarted track clamps to 0")
}

func TestProgressOpenEnded(t *testing.T) {
	t.Parallel()

	now := time.Now()

	a := &Activity{Timestamps: &Timestamps{
		Start: now.UnixMilli() - 1000,
	}}

	expected := 1000.0 / float64(OpenEndedCeiling.Milliseconds()) * 100

	testutil.InDelta(t, expected, Progress(a, now), 0.01, "elapsed against the 2h ceiling")
}

func TestProgressOpenEndedCapsAt100(t *testing.T) {
	t.Parallel()

	now := time.Now()

	a := &Activity{Timestamps: &Timestamps{
		Start: now.Add(-3 * time.Hour).UnixMilli(),
	}}

	testutil.Assert(t, 100.0, Progress(a, now), "long-running activity caps at 100")
}

func TestProgressNoTimestampsPulses(t *testing.T) {
	t.Parallel()

	for i := 0; i < 100; i++ {
		now := time.Unix(int64(i)*37, 0)

		p := Progress(&Activity{Name: "idle thing"}, now)
		if p < 0 || p > 30 {
			t.Fatalf("pulse out of range at %v: %v", now, p)
		}
	}
}

func TestProgressNoSelection(t *testing.T) {
	t.Parallel()

	testutil.Assert(t, 0.0, Progress(nil, time.Now()), "no current activity reads 0")
}
