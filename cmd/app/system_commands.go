package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/signup/cmd/app/commands"
	"github.com/allisson/signup/internal/app"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP server and the outbox worker",
			Action: func(ctx context.Context, _ *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Apply the database migrations of the configured driver",
			Action: func(ctx context.Context, _ *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					cfg := container.Config()
					return commands.RunMigrations(container.Logger(), cfg.DBDriver, cfg.DBConnectionString)
				})
			},
		},
		{
			Name:  "clean-outbox",
			Usage: "Purge delivered outbox events past a retention window",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:     "days",
					Aliases:  []string{"d"},
					Required: true,
					Usage:    "Retention window in days",
				},
				&cli.BoolFlag{
					Name:    "dry-run",
					Aliases: []string{"n"},
					Usage:   "Only count the events that would be purged",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					outboxUseCase, err := container.OutboxUseCase()
					if err != nil {
						return err
					}

					return commands.RunCleanOutbox(
						ctx,
						outboxUseCase,
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.Int("days"),
						cmd.Bool("dry-run"),
						cmd.String("format"),
					)
				})
			},
		},
	}
}
