package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/nextfit/internal/logging"
	"github.com/firefly-engineering/nextfit/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive allocation form",
	Long: `Opens a terminal form for allocating processes.

Keys:
  Enter       - Allocate (in the inputs) or list a block's processes (in the list)
  Tab         - Move between name, size and block list
  Ctrl+R      - Reset memory
  Esc/Ctrl+C  - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	a := getApp()
	logging.Debug("tui mode started", "blocks", a.Session.Len())

	if err := tui.Run(a.Session, a.Renderer); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
