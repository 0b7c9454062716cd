package presence

import (
	"sync"
	"time"

	"github.com/delciak/biolink/internal/errors"
	"github.com/delciak/biolink/internal/externalapis"
	"github.com/delciak/biolink/internal/global"
	"github.com/delciak/biolink/internal/instance"
	"github.com/delciak/biolink/internal/presence"
	"github.com/delciak/biolink/internal/task"
	"github.com/seventv/common/utils"
	"go.uber.org/zap"
)

type FetchFunc func(gctx global.Context, userID string) (presence.Record, error)

type Options struct {
	UserID       string
	PollInterval time.Duration

	// ViewsInterval controls how often the view-count gauge is refreshed.
	ViewsInterval time.Duration

	Views      instance.Views
	Prometheus instance.Prometheus

	// Fetch defaults to the Lanyard client.
	Fetch FetchFunc
}

// New builds the poller and performs the initial fetch synchronously, so the
// first snapshot served is already populated when the upstream is healthy.
func New(gctx global.Context, opt Options) instance.Presence {
	if opt.Fetch == nil {
		opt.Fetch = externalapis.Lanyard.UserPresence
	}

	inst := &presenceInst{
		gctx:      gctx,
		opt:       opt,
		selection: presence.NewSelection(nil),
	}

	inst.poll()

	inst.pollTask = task.StartRepeating(opt.PollInterval, inst.poll)
	inst.progressTask = task.StartRepeating(time.Second, inst.refreshProgress)

	if opt.Views != nil && opt.Prometheus != nil && opt.ViewsInterval > 0 {
		inst.viewsTask = task.StartRepeating(opt.ViewsInterval, func() {
			opt.Prometheus.SetViewCount(opt.Views.Read())
		})
	}

	go func() {
		<-gctx.Done()

		inst.Stop()
	}()

	return inst
}

type presenceInst struct {
	gctx global.Context
	opt  Options

	pollTask     *task.Repeating
	progressTask *task.Repeating
	viewsTask    *task.Repeating
	stopOnce     sync.Once

	mx           sync.Mutex
	record       *presence.Record
	selection    *presence.Selection
	customStatus *presence.ActivityView
	progress     float64
	updatedAt    time.Time
	stale        bool
	lastErr      string
}

func (inst *presenceInst) poll() {
	start := time.Now()

	rec, err := inst.opt.Fetch(inst.gctx, inst.opt.UserID)

	if inst.opt.Prometheus != nil {
		inst.opt.Prometheus.ObserveLanyardFetch(fetchOutcome(err), time.Since(start))
	}

	inst.mx.Lock()
	defer inst.mx.Unlock()

	if err != nil {
		// The last good record is retained and served as stale rather than
		// dropped; a transient upstream outage must not blank the page.
		if inst.opt.Prometheus != nil {
			inst.opt.Prometheus.IncrementPollErrors()
		}

		zap.S().Errorw("presence poll failed",
			"user_id", inst.opt.UserID,
			"error", err,
		)

		inst.stale = inst.record != nil
		inst.lastErr = err.Error()

		return
	}

	inst.record = &rec
	inst.selection.Replace(presence.Displayable(rec))

	if cs, ok := presence.CustomStatus(rec); ok {
		inst.customStatus = utils.PointerOf(presence.ViewOf(cs))
	} else {
		inst.customStatus = nil
	}

	inst.stale = false
	inst.lastErr = ""
	inst.updatedAt = time.Now()
	inst.refreshProgressLocked()
}

func fetchOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Compare(err, errors.ErrNotTracked):
		return "not_tracked"
	case errors.Compare(err, errors.ErrUpstreamUnavailable):
		return "upstream_unavailable"
	default:
		return "error"
	}
}

func (inst *presenceInst) refreshProgress() {
	inst.mx.Lock()
	defer inst.mx.Unlock()

	inst.refreshProgressLocked()
}

func (inst *presenceInst) refreshProgressLocked() {
	if cur, ok := inst.selection.Current(); ok {
		inst.progress = presence.Progress(&cur, time.Now())
	} else {
		inst.progress = presence.Progress(nil, time.Now())
	}
}

func (inst *presenceInst) Snapshot() presence.Snapshot {
	inst.mx.Lock()
	defer inst.mx.Unlock()

	return inst.snapshotLocked()
}

func (inst *presenceInst) Cycle(direction instance.CycleDirection) presence.Snapshot {
	inst.mx.Lock()
	defer inst.mx.Unlock()

	switch direction {
	case instance.CycleNext:
		inst.selection.Next()
	case instance.CyclePrevious:
		inst.selection.Previous()
	}

	inst.refreshProgressLocked()

	return inst.snapshotLocked()
}

func (inst *presenceInst) snapshotLocked() presence.Snapshot {
	return presence.Snapshot{
		Record:       inst.record,
		Activities:   utils.Map(inst.selection.Items(), presence.ViewOf),
		CustomStatus: inst.customStatus,
		Index:        inst.selection.Index(),
		Progress:     inst.progress,
		UpdatedAt:    inst.updatedAt,
		Stale:        inst.stale,
		Error:        inst.lastErr,
	}
}

func (inst *presenceInst) Stop() {
	inst.stopOnce.Do(func() {
		inst.pollTask.Stop()
		inst.progressTask.Stop()

		if inst.viewsTask != nil {
			inst.viewsTask.Stop()
		}
	})
}
