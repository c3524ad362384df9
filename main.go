package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/cloudmesh/yamldb/cmd"
	errUtils "github.com/cloudmesh/yamldb/errors"
	log "github.com/cloudmesh/yamldb/pkg/logger"
)

func main() {
	// Exit with the correct POSIX code (128 + signal number) on SIGINT and
	// SIGTERM. errUtils.OsExit lets tests intercept the exit.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		if s, ok := sig.(syscall.Signal); ok {
			errUtils.OsExit(128 + int(s))
		}
		errUtils.OsExit(130)
	}()

	errUtils.OsExit(run())
}

// run executes the CLI and returns its exit code.
func run() int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	// Silent errors carry an exit code but no message (e.g. `has` on a
	// missing key already printed "false").
	if !errors.Is(err, errUtils.ErrSilent) {
		formatted := errUtils.Format(err, errUtils.DefaultFormatterConfig())
		os.Stderr.WriteString(formatted + "\n")
	}

	exitCode := errUtils.GetExitCode(err)
	log.Debug("Exiting with exit code", "code", exitCode)
	return exitCode
}
