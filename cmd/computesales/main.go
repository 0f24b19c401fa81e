package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"compute-sales-go/internal/config"
	"compute-sales-go/internal/dataset"
	"compute-sales-go/internal/logger"
	"compute-sales-go/internal/pipeline"
)

const usage = "Usage: computesales ProductList.json Sales.json"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stdout, usage)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stdout, "Error de configuración: %v\n", err)
		return 1
	}
	logger.Setup(cfg.App.Environment, cfg.App.LogLevel, stderr)

	log := logger.New().WithRun("")
	log.WithField("catalog", args[0]).WithField("sales", args[1]).Info("starting run")

	res, err := pipeline.Run(ctx, pipeline.Options{
		CatalogPath: args[0],
		SalesPath:   args[1],
		OutputDir:   cfg.Output.Dir,
		XLSX:        cfg.Output.XLSX,
		Loader:      dataset.NewLoader(cfg.Remote),
		Out:         stdout,
		Log:         log,
	})
	if err != nil {
		var loadErr *dataset.LoadError
		if errors.As(err, &loadErr) {
			fmt.Fprintln(stdout, loadErr.Diagnostic())
		} else {
			fmt.Fprintf(stdout, "Error: %v\n", err)
		}
		log.WithError(err).Error("run failed")
		return 1
	}

	log.WithField("results", res.ResultsPath).Info("run finished")
	return 0
}
