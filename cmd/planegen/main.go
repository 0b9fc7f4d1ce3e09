package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"plane-geometry/internal/commands"
	"plane-geometry/internal/env"
	"plane-geometry/internal/geometry"
	"plane-geometry/internal/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, commands.ErrUsage) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "planegen:", err)
		os.Exit(1)
	}
}

// run wires logging and dispatches args to a subcommand, writing reports to out.
func run(args []string, out io.Writer) error {
	if err := env.Load(".env"); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	level, err := logger.ParseLevel(env.Get(env.LogLevelKey, ""))
	if err != nil {
		return err
	}
	log := logger.New(env.Get(env.LogFileKey, logger.LogFilePath))
	geometry.SetLogger(slog.New(log.Handler(level)))
	defer geometry.SetLogger(nil)

	reg := commands.NewRegistry()
	registerStats(reg, out)
	registerView(reg)

	err = reg.Execute(args)
	if errors.Is(err, commands.ErrUsage) {
		fmt.Fprintln(out, "usage: planegen <command> [flags]")
		reg.Usage(out)
	}
	return err
}
