package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/nextfit/internal/display"
	"github.com/firefly-engineering/nextfit/internal/logging"
	"github.com/firefly-engineering/nextfit/internal/session"
)

var (
	runStrict  bool
	runInspect int
)

var runCmd = &cobra.Command{
	Use:   "run NAME:SIZE [NAME:SIZE...]",
	Short: "Allocate a sequence of processes and show the final block state",
	Long: `Applies each NAME:SIZE request in order to a fresh allocator, printing
the result of every allocation followed by the block table.

Malformed requests are reported and skipped. With --strict the first
malformed request or failed allocation stops the run with a non-zero exit
code.

Example:
  nextfit run P1:250 P2:180 "web server:90" --inspect 1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runStrict, "strict", false, "Stop at the first input error or failed allocation")
	runCmd.Flags().IntVar(&runInspect, "inspect", 0, "List every process in block N after the run")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	a := getApp()
	out := cmd.OutOrStdout()

	var runErr error
	placed := 0
	for _, raw := range args {
		req, err := session.ParseRequest(raw)
		if err != nil {
			if runStrict {
				runErr = err
				break
			}
			logWarning("Input Error: %v", err)
			continue
		}

		res := a.Session.Execute(req)
		if res.Err != nil {
			if runStrict {
				runErr = res.Err
				break
			}
			logWarning("Input Error: %v", res.Err)
			continue
		}

		fmt.Fprintln(out, display.Result(*res.Allocation))
		if res.Allocation.OK {
			placed++
		} else if runStrict {
			runErr = res.Allocation.Err()
			break
		}
	}

	logging.Debug("run finished", "requests", len(args), "placed", placed, "cursor", a.Session.Cursor())

	fmt.Fprintln(out)
	printBlocks(out, a)

	if runInspect != 0 {
		res := a.Session.Execute(session.InspectBlockCmd{Ordinal: runInspect})
		if res.Err != nil {
			// The allocation failure decides the exit code
			if runErr != nil {
				return runErr
			}
			return res.Err
		}
		fmt.Fprintln(out)
		printOccupants(out, runInspect, res.Occupants)
	}

	return runErr
}
