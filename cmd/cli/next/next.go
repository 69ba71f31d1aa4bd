package next

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/crucial707/habit-countdown/cmd/cli/config"
	"github.com/crucial707/habit-countdown/cmd/cli/output"
	"github.com/crucial707/habit-countdown/cmd/cli/root"
	"github.com/crucial707/habit-countdown/internal/countdown"
)

func init() {
	root.GetRoot().AddCommand(nextCmd())
}

type result struct {
	Time   string    `json:"time"`
	NextAt time.Time `json:"next_at"`
	Text   string    `json:"text"`
}

func nextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next HH:MM [HH:MM...]",
		Short: "Show time remaining until reminder times",
		Long: `Show the time remaining until the next occurrence of each reminder time.
A time that has already passed today counts down to tomorrow.

Example:
  countdown next 09:30 21:00
  countdown next 09:30 --at 08:00`,
		Args: cobra.MinimumNArgs(1),
		RunE: runNext,
	}
	cmd.Flags().String("at", "", "Compute as of today at HH:MM instead of now")
	cmd.Flags().BoolP("json", "j", false, "Output raw JSON instead of a table")
	return cmd
}

func runNext(cmd *cobra.Command, args []string) error {
	at, _ := cmd.Flags().GetString("at")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	now, err := config.Now(at)
	if err != nil {
		return err
	}

	results := make([]result, 0, len(args))
	for _, arg := range args {
		tod, err := countdown.ParseTimeOfDay(arg)
		if err != nil {
			return err
		}
		results = append(results, result{
			Time:   tod.String(),
			NextAt: countdown.Next(now, tod),
			Text:   countdown.Text(now, tod),
		})
	}

	if jsonOutput {
		return output.RenderJSON(cmd.OutOrStdout(), results)
	}

	rows := make([][]interface{}, 0, len(results))
	for _, r := range results {
		rows = append(rows, []interface{}{r.Time, r.NextAt.Format("Mon Jan 2 15:04"), r.Text})
	}
	output.RenderTable(cmd.OutOrStdout(), []string{"Time", "Next", "Remaining"}, rows)
	return nil
}
