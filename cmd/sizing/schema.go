package main

import (
	"context"
	"fmt"

	"github.com/rxtech-lab/argo-sizing/internal/config"
	"github.com/urfave/cli/v3"
)

func schemaAction(ctx context.Context, cmd *cli.Command) error {
	cfg := config.EmptyConfig()

	schema, err := cfg.GenerateSchemaJSON()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, schema)

	return err
}
