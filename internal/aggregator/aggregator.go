package aggregator

import (
	"compute-sales-go/internal/dataset"
	"compute-sales-go/internal/logger"
	"compute-sales-go/internal/types"
)

// Index maps catalog titles to entries. The first entry with a given title
// wins.
func Index(catalog []types.CatalogEntry) map[string]types.CatalogEntry {
	idx := make(map[string]types.CatalogEntry, len(catalog))
	for _, e := range catalog {
		if _, dup := idx[e.Title]; dup {
			continue
		}
		idx[e.Title] = e
	}
	return idx
}

// Aggregate folds sales records, in order, into a per-product summary.
// Records that are malformed or name an unknown product are skipped and
// returned as issues. A nil log falls back to a fresh logger.
func Aggregate(sales []types.Record, catalog []types.CatalogEntry, log *logger.Logger) (*types.Summary, []types.Issue) {
	if log == nil {
		log = logger.New()
	}
	entry := log.WithField("component", "aggregator")

	idx := Index(catalog)
	if len(idx) < len(catalog) {
		entry.WithField("duplicates", len(catalog)-len(idx)).Warn("duplicate catalog titles, first entry wins")
	}

	summary := types.NewSummary()
	var issues []types.Issue
	for i, rec := range sales {
		sale, err := dataset.ParseSale(rec)
		if err != nil {
			issues = append(issues, types.Issue{
				Index:   i,
				Product: sale.Product,
				Kind:    types.IssueInvalidRecord,
				Reason:  err.Error(),
			})
			continue
		}
		entry, ok := idx[sale.Product]
		if !ok {
			issues = append(issues, types.Issue{
				Index:   i,
				Product: sale.Product,
				Kind:    types.IssueNotFound,
				Reason:  "product not in catalog",
			})
			continue
		}
		summary.Add(sale.Product, entry.Price, sale.Quantity)
	}

	entry.WithFields(map[string]interface{}{
		"sales":    len(sales),
		"products": summary.Len(),
		"skipped":  len(issues),
	}).Info("aggregation complete")
	return summary, issues
}
