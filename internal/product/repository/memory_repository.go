package repository

import (
	"context"
	_ "embed"
	"fmt"
	"slices"

	"go.yaml.in/yaml/v3"

	"senthur/internal/domain"
	apperrors "senthur/internal/errors"
)

//go:embed catalog.yaml
var seedCatalog []byte

type catalogFile struct {
	Products []domain.Product `yaml:"products"`
}

// MemoryRepository serves a fixed catalog held in memory.
type MemoryRepository struct {
	products []domain.Product
	byID     map[string]int
}

func NewMemoryRepository(products []domain.Product) *MemoryRepository {
	r := &MemoryRepository{
		products: slices.Clone(products),
		byID:     make(map[string]int, len(products)),
	}
	for i, p := range r.products {
		r.byID[p.ID] = i
	}
	return r
}

// NewSeededRepository loads the embedded showroom catalog.
func NewSeededRepository() (*MemoryRepository, error) {
	products, err := ParseCatalog(seedCatalog)
	if err != nil {
		return nil, err
	}
	return NewMemoryRepository(products), nil
}

func ParseCatalog(data []byte) ([]domain.Product, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return f.Products, nil
}

func (r *MemoryRepository) FindAll(_ context.Context) ([]domain.Product, error) {
	return slices.Clone(r.products), nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("product %s not found", id))
	}
	p := r.products[i]
	return &p, nil
}
