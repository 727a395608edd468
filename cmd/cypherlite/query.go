package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// Query command errors.
var ErrNoQuery = errors.New("no query given")

func queryCommand() *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "Run a Cypher query against a JSON file",
		ArgsUsage: "<query>",
		Flags: append(dataFlags(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "output rows as a JSON array",
			},
		),
		Action: runQuery,
	}
}

func runQuery(ctx context.Context, cmd *cli.Command) error {
	query := cmd.Args().First()
	if query == "" {
		return ErrNoQuery
	}

	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	engine, err := loadEngine(cmd, log)
	if err != nil {
		return err
	}

	res, err := engine.Execute(query)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Records())
	}

	fmt.Print(renderResult(res))
	return nil
}
