package render

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/crucial707/habit-countdown/cmd/cli/config"
	"github.com/crucial707/habit-countdown/cmd/cli/root"
	"github.com/crucial707/habit-countdown/internal/page"
	"github.com/crucial707/habit-countdown/internal/renderer"
)

func init() {
	root.GetRoot().AddCommand(renderCmd())
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Fill reminder countdowns in an HTML page",
		Long: `Render every element carrying data-reminder-time in an HTML page once
and write the resulting page.

Example:
  countdown render --in dashboard.html --out dashboard.rendered.html`,
		RunE: runRender,
	}
	cmd.Flags().StringP("in", "i", "", "HTML page to render (required)")
	cmd.Flags().StringP("out", "o", "", "Output file (default stdout)")
	cmd.Flags().String("at", "", "Render as of today at HH:MM instead of now")
	cmd.MarkFlagRequired("in")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	in, _ := cmd.Flags().GetString("in")
	out, _ := cmd.Flags().GetString("out")
	at, _ := cmd.Flags().GetString("at")

	now, err := config.Now(at)
	if err != nil {
		return err
	}

	doc, err := page.Load(in)
	if err != nil {
		return err
	}
	targets := doc.ReminderTargets()
	written := renderer.New(targets, renderer.WithClock(fixedClock(now))).Tick()

	var w io.Writer = cmd.OutOrStdout()
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := doc.Render(w); err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "rendered %d of %d reminders\n", written, len(targets))
	return nil
}
