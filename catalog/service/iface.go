package service

import (
	"context"

	"github.com/ferremax/portal/catalog/domain"
)

//go:generate mockery --name CatalogService --output ./mocks
type CatalogService interface {
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	Search(ctx context.Context, query string) ([]*domain.Product, error)
}
