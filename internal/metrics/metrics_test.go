package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNormalizePath(t *testing.T) {
	tests := map[string]string{
		"/reminders":     "/reminders",
		"/reminders/12":  "/reminders/{id}",
		"/pages/3/items": "/pages/{id}/items",
		"/":              "/",
	}
	for in, want := range tests {
		if got := NormalizePath(in); got != want {
			t.Errorf("NormalizePath(%q): got %q, want %q", in, got, want)
		}
	}
}

func TestRecordTick(t *testing.T) {
	ticks := testutil.ToFloat64(CountdownTicks)
	written := testutil.ToFloat64(CountdownRendered.WithLabelValues("written"))
	skipped := testutil.ToFloat64(CountdownRendered.WithLabelValues("skipped"))

	RecordTick(3, 1)

	if got := testutil.ToFloat64(CountdownTicks) - ticks; got != 1 {
		t.Errorf("ticks delta: got %v, want 1", got)
	}
	if got := testutil.ToFloat64(CountdownRendered.WithLabelValues("written")) - written; got != 3 {
		t.Errorf("written delta: got %v, want 3", got)
	}
	if got := testutil.ToFloat64(CountdownRendered.WithLabelValues("skipped")) - skipped; got != 1 {
		t.Errorf("skipped delta: got %v, want 1", got)
	}
}

func TestSetTargets(t *testing.T) {
	SetTargets(4)
	if got := testutil.ToFloat64(CountdownTargets); got != 4 {
		t.Errorf("targets gauge: got %v, want 4", got)
	}
	SetTargets(0)
}
