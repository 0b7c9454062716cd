package limiter

import (
	"sync"
	"time"

	"github.com/delciak/biolink/internal/instance"
	cache "github.com/patrickmn/go-cache"
)

func New() instance.Limiter {
	return &limiterInst{
		buckets: cache.New(time.Minute, time.Minute*5),
	}
}

type limiterInst struct {
	mx      sync.Mutex
	buckets *cache.Cache
}

type bucketState struct {
	count int64
	reset time.Time
}

func (inst *limiterInst) Allow(bucket string, identifier string, limit int64, window time.Duration) (int64, time.Duration, bool) {
	inst.mx.Lock()
	defer inst.mx.Unlock()

	key := bucket + ":" + identifier
	now := time.Now()

	if x, found := inst.buckets.Get(key); found {
		st := x.(*bucketState)
		st.count++

		remaining := limit - st.count
		if remaining < 0 {
			remaining = 0
		}

		return remaining, time.Until(st.reset), st.count <= limit
	}

	st := &bucketState{count: 1, reset: now.Add(window)}
	inst.buckets.Set(key, st, window)

	return limit - 1, window, limit >= 1
}
