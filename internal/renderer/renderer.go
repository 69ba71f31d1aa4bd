// Package renderer keeps reminder countdowns current. A Renderer is attached
// to the reminder targets of one page when the page loads, writes each
// target's remaining time immediately, and rewrites all of them every
// DefaultInterval until its Handle is stopped.
package renderer

import (
	"context"
	"log/slog"
	"time"

	"github.com/crucial707/habit-countdown/internal/countdown"
	"github.com/crucial707/habit-countdown/internal/metrics"
	"github.com/crucial707/habit-countdown/internal/scheduler"
)

// DefaultInterval is the period between ticks.
const DefaultInterval = 60 * time.Second

// Target is a page element carrying a reminder time and a text slot.
type Target interface {
	// TimeAttr returns the raw "HH:MM" reminder time.
	TimeAttr() string
	// SetText replaces the element's text.
	SetText(text string)
}

// Clock abstracts the wall-clock time source.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock overrides the time source (default SystemClock).
func WithClock(c Clock) Option {
	return func(r *Renderer) { r.clock = c }
}

// WithLogger sets the logger (default slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) { r.log = l }
}

// Renderer writes countdown text into a fixed set of targets.
type Renderer struct {
	targets  []Target
	clock    Clock
	log      *slog.Logger
	interval time.Duration
}

// New returns a Renderer for targets. The set is fixed for the Renderer's lifetime.
func New(targets []Target, opts ...Option) *Renderer {
	r := &Renderer{
		targets:  append([]Target(nil), targets...),
		clock:    SystemClock{},
		log:      slog.Default(),
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Len returns the number of attached targets.
func (r *Renderer) Len() int {
	return len(r.targets)
}

// Tick renders every target once and returns how many were written. Targets
// whose reminder time does not parse are skipped and keep their text.
func (r *Renderer) Tick() int {
	written, skipped := 0, 0
	for _, t := range r.targets {
		if r.render(t) {
			written++
		} else {
			skipped++
		}
	}
	metrics.RecordTick(written, skipped)
	r.log.Debug("countdown tick", "written", written, "skipped", skipped)
	return written
}

func (r *Renderer) render(t Target) bool {
	raw := t.TimeAttr()
	tod, err := countdown.ParseTimeOfDay(raw)
	if err != nil {
		r.log.Debug("countdown: skipping target", "time", raw, "error", err)
		return false
	}
	t.SetText(countdown.Text(r.clock.Now(), tod))
	return true
}

// Handle is the cancellation handle of a started Renderer.
type Handle struct {
	job *scheduler.Handle
}

// Start renders all targets once, then schedules a tick every interval.
func (r *Renderer) Start() *Handle {
	metrics.SetTargets(len(r.targets))
	r.Tick()
	job := scheduler.Every(r.interval, func() { r.Tick() }, r.log)
	r.log.Info("countdown renderer started", "targets", len(r.targets), "interval", r.interval.String())
	return &Handle{job: job}
}

// Start is the page-load entry point: New(targets, opts...).Start().
func Start(targets []Target, opts ...Option) *Handle {
	return New(targets, opts...).Start()
}

// Running reports whether the renderer has not been stopped.
func (h *Handle) Running() bool {
	return h.job.Running()
}

// Stop tears the renderer down. It waits for an in-flight tick unless ctx ends first.
func (h *Handle) Stop(ctx context.Context) error {
	err := h.job.Stop(ctx)
	metrics.SetTargets(0)
	return err
}
