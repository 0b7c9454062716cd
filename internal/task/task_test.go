package task

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestRepeatingRunsAndStops(t *testing.T) {
	t.Parallel()

	var runs atomic.Int64

	r := StartRepeating(time.Millisecond*10, func() {
		runs.Add(1)
	})

	time.Sleep(time.Millisecond * 100)
	r.Stop()

	after := runs.Load()
	if after == 0 {
		t.Fatal("task never ran")
	}

	time.Sleep(time.Millisecond * 50)
	if runs.Load() != after {
		t.Fatal("task kept running after Stop")
	}
}

func TestRepeatingStopIsIdempotent(t *testing.T) {
	t.Parallel()

	r := StartRepeating(time.Millisecond*10, func() {})

	r.Stop()
	r.Stop()
}
