package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/nextfit/internal/app"
	"github.com/firefly-engineering/nextfit/internal/config"
	"github.com/firefly-engineering/nextfit/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	configPath string
	profile    string
)

// application is built once per invocation in PersistentPreRunE
var application *app.App

var rootCmd = &cobra.Command{
	Use:   "nextfit",
	Short: "Next-fit memory allocation simulator",
	Long: `nextfit simulates next-fit contiguous memory allocation over a fixed
partition table.

Each block is a fixed-size partition:
  - Requests are placed in the first block that fits, scanning from
    the block after the last successful allocation
  - A block may hold several processes while it has room left
  - Blocks are never split, merged or freed; reset restores the table

Default layout: 300, 200, 100, 250, 150 and 50 KB.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		flags := logging.Options{Verbose: verbose, JSON: jsonOutput}
		logging.Setup(cmd.ErrOrStderr(), flags)
		logging.SetUserOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())

		cfg, err := config.Load(config.Options{
			Path:    configPath,
			Profile: profile,
		})
		if err != nil {
			return err
		}

		logging.Setup(cmd.ErrOrStderr(), flags, cfg.Log.Options())

		a, err := app.New(app.WithConfig(cfg))
		if err != nil {
			return err
		}
		application = a
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a TOML config file")
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "Named layout profile from the config directory")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
)
