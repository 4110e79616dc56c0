package product

import (
	"context"
)

type searchUseCase struct {
	service Service
}

func NewSearchUseCase(service Service) SearchUseCase {
	return &searchUseCase{service: service}
}

func (uc *searchUseCase) SearchProducts(ctx context.Context, req SearchProductsRequest) (*SearchProductsResponse, error) {
	found, err := uc.service.Search(ctx, req.Query, req.Category)
	if err != nil {
		return nil, err
	}

	products := make([]ProductDTO, 0, len(found))
	for _, p := range found {
		products = append(products, ProductDTO{
			ID:        p.ID,
			Category:  p.Category,
			Name:      p.Name,
			UnitPrice: p.UnitPrice,
		})
	}

	return &SearchProductsResponse{
		Products: products,
		Count:    len(products),
	}, nil
}

func (uc *searchUseCase) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := uc.service.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}
