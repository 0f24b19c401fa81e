package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Record is one decoded JSON object from a catalog or sales file.
type Record = map[string]any

type CatalogEntry struct {
	Title string
	Price decimal.Decimal
}

type SaleEvent struct {
	Product  string
	Quantity decimal.Decimal
}

type ChargeSummary struct {
	Product   string
	UnitPrice decimal.Decimal
	Quantity  decimal.Decimal
	Total     decimal.Decimal
}

type IssueKind string

const (
	IssueNotFound      IssueKind = "not_found"
	IssueInvalidRecord IssueKind = "invalid_record"
)

// Issue is a sale record that was skipped during aggregation.
type Issue struct {
	Index   int
	Product string
	Kind    IssueKind
	Reason  string
}

// Message is the diagnostic shown to the user for a skipped record.
func (i Issue) Message() string {
	if i.Kind == IssueNotFound {
		return fmt.Sprintf("Producto '%s' no encontrado en el catálogo.", i.Product)
	}
	return fmt.Sprintf("Registro de venta #%d inválido: %s", i.Index+1, i.Reason)
}
