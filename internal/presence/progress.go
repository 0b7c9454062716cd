package presence

import (
	"math"
	"time"
)

// OpenEndedCeiling is the display ceiling for activities that report a start
// but no end: games and streams fill the bar over two hours.
const OpenEndedCeiling = 2 * time.Hour

// Progress computes the 0-100 display value for the selected activity at the
// given wall-clock time. A nil activity (empty sequence) reads as 0. With
// both timestamps the value is true playback position; with only a start it
// is elapsed time against OpenEndedCeiling; with neither it is a gentle
// sine pulse in [0, 30] that only signals liveliness.
func Progress(a *Activity, now time.Time) float64 {
	if a == nil {
		return 0
	}

	ts := a.Timestamps
	nowMs := now.UnixMilli()

	switch {
	case ts != nil && ts.Start > 0 && ts.End > 0:
		total := ts.End - ts.Start
		if total <= 0 {
			return 100
		}

		return clamp(float64(nowMs-ts.Start)/float64(total)*100, 0, 100)

	case ts != nil && ts.Start > 0:
		elapsed := float64(nowMs - ts.Start)

		return math.Min(100, elapsed/float64(OpenEndedCeiling.Milliseconds())*100)

	default:
		return ((math.Sin(float64(now.Unix())) + 1) / 2) * 30
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
