package tui

import (
	"github.com/spf13/cobra"
	"github.com/wisdomwellbeing/resourcectl/internal/util"
)

// ShouldUseTUI returns true if the command should use interactive TUI mode.
// TUI mode is enabled when:
// - stdin and stdout are terminals
// - --no-interactive flag is not set
// - --json is not set (indicates scripting intent)
func ShouldUseTUI(cmd *cobra.Command) bool {
	if !util.IsTTY() || !util.StdinIsTTY() {
		return false
	}

	noInteractive, _ := cmd.Flags().GetBool("no-interactive")
	if noInteractive {
		return false
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return false
	}

	return true
}
