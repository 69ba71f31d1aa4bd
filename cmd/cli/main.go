package main

import (
	"fmt"
	"os"

	_ "github.com/crucial707/habit-countdown/cmd/cli/next"
	_ "github.com/crucial707/habit-countdown/cmd/cli/reminders"
	_ "github.com/crucial707/habit-countdown/cmd/cli/render"
	"github.com/crucial707/habit-countdown/cmd/cli/root"
)

func main() {
	if err := root.GetRoot().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
