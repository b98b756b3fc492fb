package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rxtech-lab/argo-sizing/internal/logger"
	"github.com/rxtech-lab/argo-sizing/internal/moneymanager"
	"github.com/rxtech-lab/argo-sizing/internal/types"
	"github.com/rxtech-lab/argo-sizing/internal/version"
	"github.com/urfave/cli/v3"
)

const (
	operationBuy   = "buy"
	operationSell  = "sell"
	operationShort = "short"
	operationCover = "cover"
)

func main() {
	cmd := &cli.Command{
		Name:    "sizing",
		Usage:   "Resolve position sizes with a configured money manager",
		Version: version.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Path to a .env file with SIZING_* defaults",
				Value: ".env",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			envFile := cmd.String("env-file")
			if _, err := os.Stat(envFile); err == nil {
				return ctx, godotenv.Load(envFile)
			}

			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:   "resolve",
				Usage:  "Resolve a single sizing request against a fresh backtest account",
				Action: resolveAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "config",
						Aliases:  []string{"c"},
						Usage:    "Path to the money manager config file",
						Sources:  cli.EnvVars("SIZING_CONFIG"),
						Required: true,
					},
					&cli.StringFlag{
						Name:     "instruments",
						Aliases:  []string{"i"},
						Usage:    "Path to the instrument registry file",
						Sources:  cli.EnvVars("SIZING_INSTRUMENTS"),
						Required: true,
					},
					&cli.StringFlag{
						Name:     "symbol",
						Aliases:  []string{"s"},
						Usage:    "Instrument symbol",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "operation",
						Aliases: []string{"o"},
						Usage:   fmt.Sprintf("Operation to size (%s)", strings.Join([]string{operationBuy, operationSell, operationShort, operationCover}, ", ")),
						Value:   operationBuy,
					},
					&cli.FloatFlag{
						Name:     "price",
						Aliases:  []string{"p"},
						Usage:    "Reference price",
						Required: true,
					},
					&cli.FloatFlag{
						Name:     "risk",
						Aliases:  []string{"r"},
						Usage:    "Risk per share",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "origin",
						Usage: "Who raised the request (ENVIRONMENT, CONDITION, SIGNAL, STOP_LOSS, OTHER)",
						Value: string(types.OriginSignal),
					},
					&cli.TimestampFlag{
						Name:  "time",
						Usage: "Market time of the request in `YYYY-MM-DD` format (or RFC3339)",
						Value: time.Now(),
						Config: cli.TimestampConfig{
							Layouts: []string{"2006-01-02", time.RFC3339},
						},
					},
					&cli.FloatFlag{
						Name:  "cash",
						Usage: "Override the account's initial cash",
					},
					&cli.BoolFlag{
						Name:  "execute",
						Usage: "Book a resolved buy on the account and show the journal",
					},
					&cli.StringFlag{
						Name:    "log-level",
						Usage:   "Log level (debug, info, warn, error)",
						Sources: cli.EnvVars("SIZING_LOG_LEVEL"),
						Value:   "warn",
					},
					&cli.StringFlag{
						Name:    "log-format",
						Usage:   "Log encoding (console, json)",
						Sources: cli.EnvVars("SIZING_LOG_FORMAT"),
						Value:   string(logger.FormatConsole),
					},
				},
			},
			{
				Name:  "params",
				Usage: "List the money manager params and their defaults",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return printParams(cmd.Root().Writer, moneymanager.DefaultParams())
				},
			},
			{
				Name:   "schema",
				Usage:  "Print the JSON schema of the money manager config",
				Action: schemaAction,
			},
			{
				Name:  "version",
				Usage: "Print the tool version",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprintln(cmd.Root().Writer, version.GetVersion())

					return err
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
