package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/nextfit/internal/logging"
	"github.com/firefly-engineering/nextfit/internal/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive allocation prompt",
	Long: `Starts a line-oriented prompt over a fresh allocator.

Commands:
  allocate <name> <size>  Allocate a process (quote names with spaces)
  show                    Show every block
  block <n>               List every process in block n
  reset                   Reset memory to its initial state
  exit                    Leave the prompt`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	a := getApp()
	logging.Debug("shell mode started", "blocks", a.Session.Len())

	sh := shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), a.Session, a.Renderer)
	return sh.Run()
}
