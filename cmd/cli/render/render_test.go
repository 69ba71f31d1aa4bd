package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const dashboard = `<!DOCTYPE html><html><body>
<span data-reminder-time="09:30">-</span>
<span data-reminder-time="bogus">-</span>
</body></html>`

func TestRender_ToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "dashboard.html")
	out := filepath.Join(dir, "out.html")
	if err := os.WriteFile(in, []byte(dashboard), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	cmd := renderCmd()
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--in", in, "--out", out, "--at", "10:00"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), `<span data-reminder-time="09:30">23h 30m remaining</span>`) {
		t.Errorf("unexpected output: %s", data)
	}
	if !strings.Contains(string(data), `<span data-reminder-time="bogus">-</span>`) {
		t.Errorf("malformed reminder should be left as is: %s", data)
	}
	if !strings.Contains(stderr.String(), "rendered 1 of 2 reminders") {
		t.Errorf("unexpected summary: %s", stderr.String())
	}
}

func TestRender_ToStdout(t *testing.T) {
	in := filepath.Join(t.TempDir(), "dashboard.html")
	if err := os.WriteFile(in, []byte(dashboard), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	cmd := renderCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--in", in, "--at", "08:00"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(stdout.String(), ">1h 30m remaining<") {
		t.Errorf("unexpected output: %s", stdout.String())
	}
}

func TestRender_MissingInput(t *testing.T) {
	cmd := renderCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--in", filepath.Join(t.TempDir(), "nope.html")})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for missing input file")
	}
}
