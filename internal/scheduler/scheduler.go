package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

// Handle controls a recurring job started with Every. Stop is the only way
// to end the job; nothing tears it down implicitly.
type Handle struct {
	c       *cron.Cron
	once    sync.Once
	stopped context.Context
	running atomic.Bool
}

// Every runs job every interval on a cron scheduler until the returned Handle
// is stopped. Intervals are rounded down to whole seconds with a one second
// minimum. Runs never overlap: a run still in progress when the next one is
// due causes that next run to be skipped. A panicking run is logged and does
// not stop the schedule.
func Every(interval time.Duration, job func(), logger *slog.Logger) *Handle {
	if logger == nil {
		logger = slog.Default()
	}
	cl := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError))

	c := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	c.Schedule(cron.Every(interval), cron.FuncJob(job))
	c.Start()

	h := &Handle{c: c}
	h.running.Store(true)
	logger.Debug("scheduler: started", "interval", interval.String())
	return h
}

// Running reports whether Stop has not been called yet.
func (h *Handle) Running() bool {
	return h.running.Load()
}

// Stop stops scheduling new runs and waits for a run in progress to return,
// or for ctx to be done. Calling Stop more than once is safe.
func (h *Handle) Stop(ctx context.Context) error {
	h.once.Do(func() {
		h.running.Store(false)
		h.stopped = h.c.Stop()
	})
	select {
	case <-h.stopped.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
