package report

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"senthur/internal/domain"
	apperrors "senthur/internal/errors"
)

const defaultWindow = 30 * 24 * time.Hour

type Service struct {
	orders   OrderLister
	cache    SummaryCache
	cacheTTL time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(orders OrderLister, cache SummaryCache, cacheTTL time.Duration, logger *zap.Logger) *Service {
	return &Service{
		orders:   orders,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
		now:      time.Now,
	}
}

// ResolveRange validates the requested bounds, defaulting to the last 30
// days ending today.
func (s *Service) ResolveRange(start, end string) (string, string, error) {
	today := s.now()
	if end == "" {
		end = today.Format(domain.DateLayout)
	}
	if start == "" {
		start = today.Add(-defaultWindow).Format(domain.DateLayout)
	}

	var details []apperrors.ValidationDetail
	if _, err := time.Parse(domain.DateLayout, start); err != nil {
		details = append(details, apperrors.ValidationDetail{Field: "start", Message: "start must be a YYYY-MM-DD date"})
	}
	if _, err := time.Parse(domain.DateLayout, end); err != nil {
		details = append(details, apperrors.ValidationDetail{Field: "end", Message: "end must be a YYYY-MM-DD date"})
	}
	if len(details) > 0 {
		return "", "", apperrors.NewValidationError("invalid date range", details...)
	}
	return start, end, nil
}

func (s *Service) Summary(ctx context.Context, start, end string) (*Stats, error) {
	gen, err := s.cache.Generation(ctx)
	cacheable := err == nil
	if err != nil {
		s.logger.Warn("report cache generation read failed", zap.String("start", start), zap.String("end", end), zap.Error(err))
	}

	if cacheable {
		if cached, ok, err := s.cache.Get(ctx, gen, start, end); err != nil {
			s.logger.Warn("report cache read failed", zap.String("start", start), zap.String("end", end), zap.Error(err))
		} else if ok {
			return cached, nil
		}
	}

	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing orders for summary: %w", err)
	}

	stats := Aggregate(orders, start, end)

	if cacheable {
		if err := s.cache.Set(ctx, gen, start, end, &stats, s.cacheTTL); err != nil {
			s.logger.Warn("report cache write failed", zap.String("start", start), zap.String("end", end), zap.Error(err))
		}
	}

	return &stats, nil
}

// ExportOrders returns the orders included in a range, in store order.
func (s *Service) ExportOrders(ctx context.Context, start, end string) ([]domain.Order, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing orders for export: %w", err)
	}
	return Filter(orders, start, end), nil
}
