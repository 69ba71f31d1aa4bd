package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sort"
)

//go:embed templates
var templatesFS embed.FS

var demoTemplate = template.Must(template.ParseFS(templatesFS, "templates/reminders.html"))

// DemoReminder is one row of the built-in reminders page.
type DemoReminder struct {
	Time  string
	Label string
}

// Demo builds the built-in reminders page, sorted by time. Countdown slots
// start empty and are filled by the renderer.
func Demo(reminders []DemoReminder) (*Document, error) {
	rows := append([]DemoReminder(nil), reminders...)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Time < rows[j].Time })

	var buf bytes.Buffer
	if err := demoTemplate.ExecuteTemplate(&buf, "reminders", map[string]interface{}{
		"Reminders": rows,
	}); err != nil {
		return nil, fmt.Errorf("execute demo page: %w", err)
	}
	return Parse(&buf)
}
