package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/delaneyj/tickwave/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const arityCountKey = "count"

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the arity-typed wrappers for wave",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Highest source arity to generate wrappers for",
				Value: 8,
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for wave started")
	defer func() {
		log.Printf("Codegen for wave finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(arityCountKey))

	contents := templates.ArityGen(count)
	return os.WriteFile("wave/arity.go", []byte(contents), 0644)
}
