package report

import (
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"compute-sales-go/internal/types"
)

const sheetName = "Results"

func WorkbookFilename(salesPath string) string {
	return baseName(salesPath) + "_results.xlsx"
}

// SaveWorkbook mirrors the results file as a spreadsheet: one row per
// product, then the grand total and the elapsed seconds.
func SaveWorkbook(dir, salesPath string, s *types.Summary, elapsed time.Duration) (string, error) {
	target := filepath.Join(dir, WorkbookFilename(salesPath))

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return "", errors.Wrapf(ErrWrite, "rename sheet: %v", err)
	}

	rows := [][]interface{}{{"Product", "Quantity", "Unit Price", "Total"}}
	for _, c := range s.Items() {
		rows = append(rows, []interface{}{
			c.Product,
			c.Quantity.InexactFloat64(),
			c.UnitPrice.InexactFloat64(),
			c.Total.InexactFloat64(),
		})
	}
	rows = append(rows,
		[]interface{}{"Total", "", "", s.GrandTotal().InexactFloat64()},
		[]interface{}{"Elapsed (s)", "", "", elapsed.Seconds()},
	)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return "", errors.Wrapf(ErrWrite, "cell name: %v", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return "", errors.Wrapf(ErrWrite, "row %d: %v", i+1, err)
		}
	}

	if err := f.SaveAs(target); err != nil {
		return "", errors.Wrapf(ErrWrite, "save %s: %v", target, err)
	}
	return target, nil
}
