package product

import (
	"go.uber.org/zap"
)

// NewModule builds the catalog HTTP controller. The returned Service is shared
// with the booking module for product lookups.
func NewModule(repo Repository, logger *zap.Logger) (*Controller, Service) {
	svc := NewService(repo)
	uc := NewSearchUseCase(svc)
	return NewController(uc, logger), svc
}
