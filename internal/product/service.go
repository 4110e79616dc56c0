package product

import (
	"context"
	"strings"

	"senthur/internal/domain"
)

// AllCategories disables the category filter.
const AllCategories = "ALL"

type productService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &productService{repo: repo}
}

// Search matches query as a case-insensitive substring of name or category
// and category exactly. Catalog order is preserved.
func (s *productService) Search(ctx context.Context, query, category string) ([]domain.Product, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	found := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if category != "" && category != AllCategories && p.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) {
			continue
		}
		found = append(found, p)
	}

	return found, nil
}

// Categories lists distinct categories in order of first appearance.
func (s *productService) Categories(ctx context.Context) ([]string, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var categories []string
	for _, p := range all {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}

	return categories, nil
}

func (s *productService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}
