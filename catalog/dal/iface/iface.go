package iface

import (
	"context"

	"github.com/ferremax/portal/catalog/domain"
)

//go:generate mockery --name Products --output ../mocks --outpkg mocks
type Products interface {
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
}
