package dataset

import (
	"fmt"

	"github.com/shopspring/decimal"

	"compute-sales-go/internal/types"
)

// ParseSale reads the Product and Quantity keys of a sales record.
func ParseSale(rec types.Record) (types.SaleEvent, error) {
	product, err := stringField(rec, "Product")
	if err != nil {
		return types.SaleEvent{}, err
	}
	qty, err := numberField(rec, "Quantity")
	if err != nil {
		return types.SaleEvent{Product: product}, err
	}
	return types.SaleEvent{Product: product, Quantity: qty}, nil
}

// ParseCatalogEntry reads the title and price keys of a catalog record.
func ParseCatalogEntry(rec types.Record) (types.CatalogEntry, error) {
	title, err := stringField(rec, "title")
	if err != nil {
		return types.CatalogEntry{}, err
	}
	price, err := numberField(rec, "price")
	if err != nil {
		return types.CatalogEntry{Title: title}, err
	}
	return types.CatalogEntry{Title: title, Price: price}, nil
}

func stringField(rec types.Record, key string) (string, error) {
	v, ok := rec[key]
	if !ok {
		return "", fmt.Errorf("missing field %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q is %T, want string", key, v)
	}
	return s, nil
}

func numberField(rec types.Record, key string) (decimal.Decimal, error) {
	v, ok := rec[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("missing field %q", key)
	}
	d, ok := Number(v)
	if !ok {
		return decimal.Zero, fmt.Errorf("field %q is %T, want number", key, v)
	}
	return d, nil
}

// Number converts a decoded JSON number to a decimal.
func Number(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case interface {
		String() string
		Float64() (float64, error)
	}:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case float64:
		return decimal.NewFromFloat(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	}
	return decimal.Zero, false
}
