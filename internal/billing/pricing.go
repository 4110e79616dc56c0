// Package billing derives an order's financial figures from its line items
// and applies the financial side effects of status changes. Everything here is
// a pure function of its inputs.
package billing

import (
	"slices"

	"senthur/internal/domain"
)

// Quote holds the figures derived for one set of items.
type Quote struct {
	CalculatedTotal float64 `json:"calculatedTotal"`
	Total           float64 `json:"total"`
	Advance         float64 `json:"advance"`
	Balance         float64 `json:"balance"`
	Manual          bool    `json:"manual"`
}

// CalculatedTotal sums unitPrice*quantity over items, skipping combo items.
func CalculatedTotal(items []domain.OrderItem) float64 {
	total := 0.0
	for _, item := range items {
		if item.IsComboItem {
			continue
		}
		total += item.LineAmount()
	}
	return total
}

// Price resolves total and balance. A non-nil manualTotal wins over the
// calculated total, including an override of zero. Balance is not clamped.
func Price(items []domain.OrderItem, manualTotal *float64, advance float64) Quote {
	calculated := CalculatedTotal(items)
	q := Quote{
		CalculatedTotal: calculated,
		Total:           calculated,
		Advance:         advance,
	}
	if manualTotal != nil {
		q.Total = *manualTotal
		q.Manual = true
	}
	q.Balance = q.Total - q.Advance
	return q
}

// SortHeadersFirst returns a copy of items with combo headers moved to the
// front. Relative order is otherwise preserved.
func SortHeadersFirst(items []domain.OrderItem) []domain.OrderItem {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b domain.OrderItem) int {
		switch {
		case a.IsComboHeader && !b.IsComboHeader:
			return -1
		case !a.IsComboHeader && b.IsComboHeader:
			return 1
		}
		return 0
	})
	return sorted
}

// HasComboHeader reports whether any item is a combo header.
func HasComboHeader(items []domain.OrderItem) bool {
	return slices.ContainsFunc(items, func(i domain.OrderItem) bool { return i.IsComboHeader })
}
