package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/rlch/cypherlite"
	"github.com/rlch/cypherlite/analysis"
)

func schemaCommand() *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "Inspect the graph structure of a JSON file",
		Flags: append(dataFlags(),
			&cli.BoolFlag{
				Name:  "infer",
				Usage: "print the inferred graph config as YAML instead of the schema",
			},
			&cli.BoolFlag{
				Name:  "pattern",
				Usage: "print a compact Cypher-style pattern of the detected schema",
			},
		),
		Action: runSchema,
	}
}

func runSchema(ctx context.Context, cmd *cli.Command) error {
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	if cmd.Bool("infer") || cmd.Bool("pattern") {
		return analyzeData(cmd)
	}

	engine, err := loadEngine(cmd, log)
	if err != nil {
		return err
	}

	fmt.Print(engine.Schema().String())
	return nil
}

func analyzeData(cmd *cli.Command) error {
	data, err := os.ReadFile(filepath.Clean(cmd.String("data")))
	if err != nil {
		return err
	}

	if cmd.Bool("infer") {
		cfg, err := cypherlite.InferConfig(data)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	det, err := analysis.Analyze(v)
	if err != nil {
		return err
	}
	fmt.Println(det.Pattern())
	return nil
}
