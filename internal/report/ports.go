package report

import (
	"context"
	"time"

	"senthur/internal/domain"
)

type OrderLister interface {
	List(ctx context.Context) ([]domain.Order, error)
}

// SummaryCache stores computed Stats per generation and date range.
// Invalidate moves to a new generation, which drops every cached range at
// once. Callers read Generation once and pass it to both Get and Set, so
// stats computed before a write are never stored under the newer generation.
type SummaryCache interface {
	Generation(ctx context.Context) (int64, error)
	Get(ctx context.Context, generation int64, start, end string) (*Stats, bool, error)
	Set(ctx context.Context, generation int64, start, end string, stats *Stats, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}
