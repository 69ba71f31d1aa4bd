// Package page adapts an HTML document to the countdown renderer. Reminder
// targets are elements carrying a data-reminder-time attribute; their text
// content is the slot the renderer writes into.
package page

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/crucial707/habit-countdown/internal/renderer"
)

const (
	// ReminderAttr holds the reminder time in "HH:MM" 24-hour form.
	ReminderAttr = "data-reminder-time"
	// LabelAttr optionally names the habit a reminder belongs to.
	LabelAttr = "data-reminder-label"
)

// Document is a parsed page. It is safe for concurrent use: target writes
// take the write lock, rendering and snapshots take the read lock.
type Document struct {
	mu  sync.RWMutex
	doc *goquery.Document
}

// Reminder is a point-in-time view of one reminder target.
type Reminder struct {
	Time  string `json:"time"`
	Label string `json:"label,omitempty"`
	Text  string `json:"text"`
}

// Parse reads an HTML page.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return &Document{doc: doc}, nil
}

// Load reads the HTML page at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func (d *Document) find() *goquery.Selection {
	return d.doc.Find("[" + ReminderAttr + "]")
}

// ReminderTargets returns every element carrying ReminderAttr, in document order.
func (d *Document) ReminderTargets() []renderer.Target {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var targets []renderer.Target
	d.find().Each(func(_ int, s *goquery.Selection) {
		attr, _ := s.Attr(ReminderAttr)
		targets = append(targets, &Target{doc: d, sel: s, attr: attr})
	})
	return targets
}

// Reminders returns the current time, label and text of every reminder target.
func (d *Document) Reminders() []Reminder {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := []Reminder{}
	d.find().Each(func(_ int, s *goquery.Selection) {
		attr, _ := s.Attr(ReminderAttr)
		label, _ := s.Attr(LabelAttr)
		out = append(out, Reminder{
			Time:  attr,
			Label: label,
			Text:  strings.TrimSpace(s.Text()),
		})
	})
	return out
}

// Render writes the current document as HTML.
func (d *Document) Render(w io.Writer) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, n := range d.doc.Nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("render page: %w", err)
		}
	}
	return nil
}

// Target is one reminder element of a Document.
type Target struct {
	doc  *Document
	sel  *goquery.Selection
	attr string
}

// TimeAttr returns the element's data-reminder-time value as discovered.
func (t *Target) TimeAttr() string {
	return t.attr
}

// SetText replaces the element's children with text.
func (t *Target) SetText(text string) {
	t.doc.mu.Lock()
	defer t.doc.mu.Unlock()
	t.sel.SetText(text)
}
