package main

import (
	"os"

	"github.com/firefly-engineering/nextfit/cmd"
	"github.com/firefly-engineering/nextfit/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
