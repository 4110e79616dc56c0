package product

import (
	"context"

	"senthur/internal/domain"
)

type SearchUseCase interface {
	SearchProducts(ctx context.Context, req SearchProductsRequest) (*SearchProductsResponse, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type Service interface {
	Search(ctx context.Context, query, category string) ([]domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type Repository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
}
