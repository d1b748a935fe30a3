package main

import (
	"os"

	"github.com/Snider/rswait/cmd"
	"github.com/Snider/rswait/pkg/logger"
)

var osExit = os.Exit

func main() {
	Main()
}

// Main runs the CLI and exits non-zero on failure.
func Main() {
	log := logger.New(false)
	if err := cmd.Execute(log); err != nil {
		log.Error("fatal error", "err", err)
		osExit(1)
	}
}
