package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/allisson/signup/cmd/app/commands"
	"github.com/allisson/signup/internal/app"
	tokenDomain "github.com/allisson/signup/internal/token/domain"
)

func envFileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "env-file",
		Aliases: []string{"e"},
		Usage:   "Path of the .env file (default: nearest .env walking up from the working directory)",
	}
}

func getTokenCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate-token",
			Usage: "Generate a secure access token",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "length",
					Aliases: []string{"l"},
					Value:   tokenDomain.DefaultByteLength,
					Usage:   "Token length in random bytes (16-128)",
				},
				&cli.StringFlag{
					Name:    "type",
					Aliases: []string{"t"},
					Value:   string(tokenDomain.EncodingHex),
					Usage:   "Token type: hex, base64, base64url or alphanumeric",
				},
				&cli.BoolFlag{
					Name:  "timestamp",
					Usage: "Include issuance and expiry times (forces hex)",
				},
				&cli.BoolFlag{
					Name:  "env",
					Usage: "Print only the SIMPLE_ACCESS_TOKEN=<token> line",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					tokenUseCase, err := container.TokenUseCase()
					if err != nil {
						return err
					}

					input := &tokenDomain.GenerateInput{
						Length:           new(cmd.Int("length")),
						Type:             new(cmd.String("type")),
						IncludeTimestamp: cmd.Bool("timestamp"),
					}
					return commands.RunGenerateToken(ctx, tokenUseCase, commands.DefaultIO().Writer,
						input, cmd.Bool("env"), cmd.String("format"))
				})
			},
		},
		{
			Name:  "init-token",
			Usage: "Add a new SIMPLE_ACCESS_TOKEN to the .env file",
			Flags: []cli.Flag{envFileFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					tokenUseCase, err := container.TokenUseCase()
					if err != nil {
						return err
					}

					envFile := commands.ResolveEnvFile(cmd.String("env-file"))
					return commands.RunInitToken(ctx, tokenUseCase, commands.DefaultIO().Writer, envFile, time.Now)
				})
			},
		},
		{
			Name:  "rotate-token",
			Usage: "Replace the SIMPLE_ACCESS_TOKEN of the .env file",
			Flags: []cli.Flag{envFileFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					tokenUseCase, err := container.TokenUseCase()
					if err != nil {
						return err
					}

					envFile := commands.ResolveEnvFile(cmd.String("env-file"))
					return commands.RunRotateToken(ctx, tokenUseCase, commands.DefaultIO().Writer, envFile)
				})
			},
		},
	}
}
