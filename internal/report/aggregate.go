// Package report computes period statistics over bookings and the text
// exports built from them.
package report

import (
	"slices"
	"strings"
	"time"

	"senthur/internal/domain"
)

type MonthBucket struct {
	Key      string  `json:"key"`
	Label    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

type Stats struct {
	Start         string                     `json:"start"`
	End           string                     `json:"end"`
	Counts        map[domain.OrderStatus]int `json:"counts"`
	TotalRevenue  float64                    `json:"totalRevenue"`
	TotalReceived float64                    `json:"totalReceived"`
	Receivables   float64                    `json:"receivables"`
	Monthly       []MonthBucket              `json:"monthly"`
}

// Filter keeps orders booked within [start, end]. Dates are YYYY-MM-DD
// strings and are compared lexicographically.
func Filter(orders []domain.Order, start, end string) []domain.Order {
	var matched []domain.Order
	for _, o := range orders {
		if o.BookingDate >= start && o.BookingDate <= end {
			matched = append(matched, o)
		}
	}
	return matched
}

// Aggregate summarises orders booked within [start, end]. Cancelled/refunded
// orders are counted but never contribute to revenue or receipts.
func Aggregate(orders []domain.Order, start, end string) Stats {
	stats := Stats{
		Start:   start,
		End:     end,
		Counts:  make(map[domain.OrderStatus]int, len(domain.OrderStatuses)),
		Monthly: []MonthBucket{},
	}
	for _, s := range domain.OrderStatuses {
		stats.Counts[s] = 0
	}

	buckets := map[string]*MonthBucket{}
	for _, o := range Filter(orders, start, end) {
		stats.Counts[o.Status]++

		key := monthKey(o.BookingDate)
		b, ok := buckets[key]
		if !ok {
			b = &MonthBucket{Key: key, Label: monthLabel(key)}
			buckets[key] = b
		}
		b.Bookings++

		if o.Status == domain.OrderStatusCancelRefunded {
			continue
		}
		stats.TotalRevenue += o.Total
		stats.TotalReceived += o.Advance
		b.Revenue += o.Total
	}

	stats.Receivables = max(0, stats.TotalRevenue-stats.TotalReceived)

	for _, b := range buckets {
		stats.Monthly = append(stats.Monthly, *b)
	}
	slices.SortFunc(stats.Monthly, func(a, b MonthBucket) int {
		return strings.Compare(a.Key, b.Key)
	})

	return stats
}

// monthKey is the YYYY-MM prefix of a booking date.
func monthKey(date string) string {
	if len(date) >= 7 {
		return date[:7]
	}
	return date
}

func monthLabel(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return t.Format("Jan 2006")
}
