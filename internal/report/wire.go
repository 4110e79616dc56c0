package report

import (
	"time"

	"go.uber.org/zap"
)

func NewModule(orders OrderLister, cache SummaryCache, cacheTTL time.Duration, logger *zap.Logger) *Controller {
	svc := NewService(orders, cache, cacheTTL, logger)
	return NewController(svc, logger)
}
