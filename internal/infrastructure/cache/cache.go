// Package cache holds report summary caches: a Redis-backed one and a no-op
// used when no Redis address is configured.
package cache

import (
	"context"
	"time"

	"senthur/internal/report"
)

type NoopReportCache struct{}

func (NoopReportCache) Generation(_ context.Context) (int64, error) {
	return 0, nil
}

func (NoopReportCache) Get(_ context.Context, _ int64, _, _ string) (*report.Stats, bool, error) {
	return nil, false, nil
}

func (NoopReportCache) Set(_ context.Context, _ int64, _, _ string, _ *report.Stats, _ time.Duration) error {
	return nil
}

func (NoopReportCache) Invalidate(_ context.Context) error {
	return nil
}

func (NoopReportCache) Close() error {
	return nil
}
