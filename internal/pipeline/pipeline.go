package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"compute-sales-go/internal/aggregator"
	"compute-sales-go/internal/dataset"
	"compute-sales-go/internal/logger"
	"compute-sales-go/internal/report"
	"compute-sales-go/internal/types"
)

type Options struct {
	CatalogPath string
	SalesPath   string
	OutputDir   string
	XLSX        bool

	Loader *dataset.Loader
	Out    io.Writer
	Log    *logger.Logger
}

type Result struct {
	Summary      *types.Summary
	Issues       []types.Issue
	Elapsed      time.Duration
	ResultsPath  string
	WorkbookPath string
}

// Run loads the catalog and the sales, aggregates them and writes the
// console report and results files. Elapsed covers loading and aggregation
// only. A load failure returns before any file is written.
func Run(ctx context.Context, opts Options) (Result, error) {
	base := opts.Log
	if base == nil {
		base = logger.New()
	}
	log := base.WithField("component", "pipeline")
	loader := opts.Loader.WithLogger(base)

	start := time.Now()
	catalog, err := loader.LoadCatalog(ctx, opts.CatalogPath)
	if err != nil {
		return Result{}, err
	}
	summary, issues, err := aggregate(ctx, loader, opts.SalesPath, catalog, base)
	if err != nil {
		return Result{}, err
	}
	res := Result{Summary: summary, Issues: issues, Elapsed: time.Since(start)}

	for _, is := range issues {
		fmt.Fprintln(opts.Out, is.Message())
		log.WithFields(map[string]interface{}{
			"index":   is.Index,
			"product": is.Product,
			"kind":    is.Kind,
		}).Warn(is.Reason)
	}

	if err := report.WriteConsole(opts.Out, summary, res.Elapsed); err != nil {
		return res, err
	}

	res.ResultsPath, err = report.SaveResults(opts.OutputDir, opts.SalesPath, summary, res.Elapsed)
	if err != nil {
		return res, err
	}
	if opts.XLSX {
		res.WorkbookPath, err = report.SaveWorkbook(opts.OutputDir, opts.SalesPath, summary, res.Elapsed)
		if err != nil {
			return res, err
		}
	}

	fmt.Fprintf(opts.Out, "Resultados generados para %s\n", res.ResultsPath)
	if res.WorkbookPath != "" {
		fmt.Fprintf(opts.Out, "Resultados generados para %s\n", res.WorkbookPath)
	}

	log.WithFields(map[string]interface{}{
		"products":    summary.Len(),
		"skipped":     len(issues),
		"grand_total": summary.GrandTotal().String(),
		"elapsed_ms":  res.Elapsed.Milliseconds(),
	}).Info("report generated")
	return res, nil
}

func aggregate(ctx context.Context, loader *dataset.Loader, salesPath string, catalog []types.CatalogEntry, log *logger.Logger) (*types.Summary, []types.Issue, error) {
	sales, err := loader.LoadRecords(ctx, salesPath)
	if err != nil {
		return nil, nil, err
	}
	summary, issues := aggregator.Aggregate(sales, catalog, log)
	return summary, issues, nil
}
