package dataset

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compute-sales-go/internal/types"
)

func TestParseSale(t *testing.T) {
	tests := []struct {
		name    string
		rec     types.Record
		want    types.SaleEvent
		wantErr string
	}{
		{
			name: "valid",
			rec:  types.Record{"Product": "A", "Quantity": 2.0, "SALE_ID": 1.0},
			want: types.SaleEvent{Product: "A", Quantity: decimal.NewFromInt(2)},
		},
		{
			name:    "missing product",
			rec:     types.Record{"Quantity": 1.0},
			wantErr: `missing field "Product"`,
		},
		{
			name:    "missing quantity",
			rec:     types.Record{"Product": "A"},
			wantErr: `missing field "Quantity"`,
		},
		{
			name:    "product not a string",
			rec:     types.Record{"Product": 7.0, "Quantity": 1.0},
			wantErr: `field "Product" is float64, want string`,
		},
		{
			name:    "quantity not a number",
			rec:     types.Record{"Product": "A", "Quantity": "two"},
			wantErr: `field "Quantity" is string, want number`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSale(tt.rec)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.Product, got.Product)
			assert.True(t, tt.want.Quantity.Equal(got.Quantity))
		})
	}
}

func TestParseCatalogEntryUsesLowercaseKeys(t *testing.T) {
	_, err := ParseCatalogEntry(types.Record{"Title": "A", "Price": 1.0})
	assert.Error(t, err)

	entry, err := ParseCatalogEntry(types.Record{"title": "A", "price": 1.5})
	require.NoError(t, err)
	assert.Equal(t, "1.5", entry.Price.String())
}

func TestNumber(t *testing.T) {
	var doc any
	require.NoError(t, json.Unmarshal([]byte(`0.1`), &doc))
	d, ok := Number(doc)
	require.True(t, ok)
	assert.Equal(t, "0.1", d.String())

	_, ok = Number("0.1")
	assert.False(t, ok)
	_, ok = Number(nil)
	assert.False(t, ok)
	_, ok = Number(true)
	assert.False(t, ok)
}
