package report

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"compute-sales-go/internal/dataset"
	"compute-sales-go/internal/types"
)

var ErrWrite = errors.New("results write failed")

const separatorWidth = 50

// ProductLine renders "<title>: <qty> x $<price> = $<total>".
func ProductLine(c types.ChargeSummary) string {
	return fmt.Sprintf("%s: %s x $%s = $%s", c.Product, c.Quantity.String(), c.UnitPrice.String(), c.Total.String())
}

// WriteConsole prints the report as shown on the terminal: the grand total
// is fixed to two decimals and the separator is '='.
func WriteConsole(w io.Writer, s *types.Summary, elapsed time.Duration) error {
	bw := bufio.NewWriter(w)
	for _, c := range s.Items() {
		fmt.Fprintln(bw, ProductLine(c))
	}
	fmt.Fprintln(bw, strings.Repeat("=", separatorWidth))
	fmt.Fprintf(bw, "Total: $%s\n", s.GrandTotal().StringFixed(2))
	fmt.Fprintf(bw, "\nTiempo para la ejecución del cálculo: %.5f seg\n", elapsed.Seconds())
	return bw.Flush()
}

// WriteResults writes the results file body. Unlike the console, the grand
// total keeps its natural precision and the separator is '-'.
func WriteResults(w io.Writer, s *types.Summary, elapsed time.Duration) error {
	items := s.Items()
	lines := make([]string, 0, len(items))
	for _, c := range items {
		lines = append(lines, ProductLine(c))
	}

	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "Results:\n")
	fmt.Fprint(bw, strings.Join(lines, "\n"))
	fmt.Fprintf(bw, "\n%s\n", strings.Repeat("-", separatorWidth))
	fmt.Fprintf(bw, "Total: $%s\n", s.GrandTotal().String())
	fmt.Fprintf(bw, "\nTiempo para ejecución del cálculo: %.5f seg\n", elapsed.Seconds())
	return bw.Flush()
}

// baseName is the sales file name without directory or extension. For URLs
// the last path segment is used.
func baseName(salesPath string) string {
	base := filepath.Base(salesPath)
	if dataset.IsRemote(salesPath) {
		if u, err := url.Parse(salesPath); err == nil {
			base = path.Base(u.Path)
		}
	}
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" {
		return base
	}
	return name
}

// ResultsFilename maps data/Sales_2024.json to Sales_2024_results.txt.
func ResultsFilename(salesPath string) string {
	return baseName(salesPath) + "_results.txt"
}

// SaveResults writes the results file for salesPath into dir, replacing any
// previous one, and returns its path.
func SaveResults(dir, salesPath string, s *types.Summary, elapsed time.Duration) (string, error) {
	target := filepath.Join(dir, ResultsFilename(salesPath))
	f, err := os.Create(target)
	if err != nil {
		return "", errors.Wrapf(ErrWrite, "create %s: %v", target, err)
	}
	defer f.Close()

	if err := WriteResults(f, s, elapsed); err != nil {
		return "", errors.Wrapf(ErrWrite, "write %s: %v", target, err)
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrapf(ErrWrite, "close %s: %v", target, err)
	}
	return target, nil
}
