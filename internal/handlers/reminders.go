package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/crucial707/habit-countdown/internal/countdown"
	"github.com/crucial707/habit-countdown/internal/page"
	"github.com/crucial707/habit-countdown/internal/renderer"
)

// ReminderItem is one reminder in the GET /reminders response.
type ReminderItem struct {
	page.Reminder
	NextAt           *time.Time `json:"next_at,omitempty"`
	RemainingSeconds *int64     `json:"remaining_seconds,omitempty"`
}

// ReminderList is the GET /reminders response body.
type ReminderList struct {
	Items       []ReminderItem `json:"items"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// ReminderHandler serves the reminder targets of the hosted page.
type ReminderHandler struct {
	Doc   *page.Document
	Clock renderer.Clock
}

func (h *ReminderHandler) now() time.Time {
	if h.Clock == nil {
		return time.Now()
	}
	return h.Clock.Now()
}

// ListReminders returns every reminder with its rendered text and next occurrence.
// Reminders whose time does not parse are listed without next_at.
func (h *ReminderHandler) ListReminders(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	reminders := h.Doc.Reminders()

	items := make([]ReminderItem, 0, len(reminders))
	for _, rem := range reminders {
		item := ReminderItem{Reminder: rem}
		if tod, err := countdown.ParseTimeOfDay(rem.Time); err == nil {
			next := countdown.Next(now, tod)
			secs := int64(next.Sub(now) / time.Second)
			item.NextAt = &next
			item.RemainingSeconds = &secs
		}
		items = append(items, item)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ReminderList{Items: items, GeneratedAt: now})
}

// Countdown computes the countdown for an arbitrary reminder time. Query: time (HH:MM, required).
func (h *ReminderHandler) Countdown(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("time")
	if raw == "" {
		JSONValidationError(w, "validation failed", map[string]string{"time": "required"}, http.StatusBadRequest)
		return
	}
	tod, err := countdown.ParseTimeOfDay(raw)
	if err != nil {
		JSONValidationError(w, "validation failed", map[string]string{"time": "must be HH:MM"}, http.StatusBadRequest)
		return
	}

	now := h.now()
	next := countdown.Next(now, tod)
	secs := int64(next.Sub(now) / time.Second)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ReminderItem{
		Reminder:         page.Reminder{Time: tod.String(), Text: countdown.Text(now, tod)},
		NextAt:           &next,
		RemainingSeconds: &secs,
	})
}
