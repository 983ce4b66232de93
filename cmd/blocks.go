package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/nextfit/internal/config"
)

var blocksProfiles bool

var blocksCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Show the configured block layout",
	Args:  cobra.NoArgs,
	RunE:  runBlocks,
}

func init() {
	blocksCmd.Flags().BoolVar(&blocksProfiles, "profiles", false, "Also list available layout profiles")
	rootCmd.AddCommand(blocksCmd)
}

func runBlocks(cmd *cobra.Command, args []string) error {
	a := getApp()
	out := cmd.OutOrStdout()

	total := 0
	for _, size := range a.Session.Layout() {
		total += size
	}
	logInfo("%d blocks, %d KB total", a.Session.Len(), total)

	if err := a.Renderer.Table(out, a.Session.Inspect()); err != nil {
		return err
	}

	if !blocksProfiles {
		return nil
	}

	dir := config.DefaultConfigDir()
	names, err := config.ListProfiles(dir)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		logInfo("No profiles found in %s", dir)
		return nil
	}
	for _, name := range names {
		logSuccess("profile %s", name)
	}
	return nil
}
