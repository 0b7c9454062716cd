package task

import (
	"sync"
	"time"
)

// Repeating runs a function on a fixed interval until stopped. The function
// runs inline in the tick loop, so a slow run delays the next tick rather
// than overlapping it.
type Repeating struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// StartRepeating begins ticking immediately. The first run happens one
// interval after start; callers wanting an immediate first run invoke fn
// themselves.
func StartRepeating(interval time.Duration, fn func()) *Repeating {
	r := &Repeating{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go func() {
		defer close(r.done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				fn()
			case <-r.stop:
				return
			}
		}
	}()

	return r
}

// Stop cancels the task and waits for any in-flight run to finish.
// Idempotent.
func (r *Repeating) Stop() {
	r.once.Do(func() {
		close(r.stop)
	})

	<-r.done
}
