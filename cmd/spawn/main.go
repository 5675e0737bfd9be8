// Package main is the entry point for the spawn CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/runoshun/spawn/internal/app"
	"github.com/runoshun/spawn/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	os.Exit(exitCode(os.Stderr, run()))
}

func run() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	container, err := app.New(cwd)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.ExecuteContext(context.Background())
}

// exitCode reports err on w and returns the process exit code.
// A waited child's failure is passed through silently.
func exitCode(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code()
	}
	_, _ = fmt.Fprintln(w, err)
	return 1
}
