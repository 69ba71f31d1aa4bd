package reminders

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/crucial707/habit-countdown/cmd/cli/config"
	"github.com/crucial707/habit-countdown/cmd/cli/output"
	"github.com/crucial707/habit-countdown/cmd/cli/root"
	"github.com/crucial707/habit-countdown/internal/handlers"
)

const requestTimeout = 10 * time.Second

func init() {
	root.GetRoot().AddCommand(remindersCmd())
}

func remindersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "List reminders served by a running countdown web host",
		Long: `List the reminders of the page hosted by countdown-web, with their
current countdown text. The host URL defaults to http://localhost:8080 and
can be set with HABIT_COUNTDOWN_URL.`,
		RunE: runReminders,
	}
	cmd.Flags().BoolP("json", "j", false, "Output raw JSON instead of a table")
	return cmd
}

func runReminders(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	list, err := fetchReminders(ctx, config.HostURL())
	if err != nil {
		return err
	}

	if jsonOutput {
		return output.RenderJSON(cmd.OutOrStdout(), list)
	}

	if len(list.Items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No reminders on the hosted page.")
		return nil
	}
	rows := make([][]interface{}, 0, len(list.Items))
	for _, item := range list.Items {
		next := "-"
		if item.NextAt != nil {
			next = item.NextAt.Local().Format("Mon Jan 2 15:04")
		}
		rows = append(rows, []interface{}{item.Time, item.Label, item.Text, next})
	}
	output.RenderTable(cmd.OutOrStdout(), []string{"Time", "Habit", "Remaining", "Next"}, rows)
	return nil
}

func fetchReminders(ctx context.Context, baseURL string) (*handlers.ReminderList, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/reminders", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call host: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("host error (%d): %s", resp.StatusCode, body)
	}

	var list handlers.ReminderList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &list, nil
}
