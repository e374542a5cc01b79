// Package main provides the entry point of the signup service CLI.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/signup/cmd/app/commands"
	"github.com/allisson/signup/internal/app"
	"github.com/allisson/signup/internal/config"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:     "signup",
		Usage:    "Event registration service",
		Version:  version,
		Commands: append(getSystemCommands(version), getTokenCommands()...),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}

// withContainer loads the configuration, hands a fresh container to fn and
// releases it afterwards.
func withContainer(ctx context.Context, fn func(container *app.Container) error) error {
	container := app.NewContainer(config.Load())
	defer func() { _ = container.Shutdown(ctx) }()

	return fn(container)
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   commands.FormatText,
		Usage:   "Output format: 'text' or 'json'",
	}
}
