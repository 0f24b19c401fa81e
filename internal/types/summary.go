package types

import "github.com/shopspring/decimal"

// Summary holds per-product charges in the order products were first seen.
type Summary struct {
	items []*ChargeSummary
	index map[string]*ChargeSummary
}

func NewSummary() *Summary {
	return &Summary{index: map[string]*ChargeSummary{}}
}

// Add folds qty units of product at price into the summary. Quantity and
// total always move together so Total stays UnitPrice*Quantity.
func (s *Summary) Add(product string, price, qty decimal.Decimal) {
	if c, ok := s.index[product]; ok {
		c.Quantity = c.Quantity.Add(qty)
		c.Total = c.Total.Add(qty.Mul(c.UnitPrice))
		return
	}
	c := &ChargeSummary{
		Product:   product,
		UnitPrice: price,
		Quantity:  qty,
		Total:     qty.Mul(price),
	}
	s.items = append(s.items, c)
	s.index[product] = c
}

func (s *Summary) Get(product string) (ChargeSummary, bool) {
	c, ok := s.index[product]
	if !ok {
		return ChargeSummary{}, false
	}
	return *c, true
}

// Items returns copies in first-insertion order.
func (s *Summary) Items() []ChargeSummary {
	out := make([]ChargeSummary, 0, len(s.items))
	for _, c := range s.items {
		out = append(out, *c)
	}
	return out
}

func (s *Summary) Len() int { return len(s.items) }

func (s *Summary) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for _, c := range s.items {
		total = total.Add(c.Total)
	}
	return total
}
