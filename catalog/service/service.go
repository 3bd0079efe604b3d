package service

import (
	"context"
	"strings"

	"github.com/ferremax/portal/framework/connection"
	"github.com/ferremax/portal/logger"

	"github.com/ferremax/portal/catalog/dal"
	"github.com/ferremax/portal/catalog/dal/iface"
	"github.com/ferremax/portal/catalog/domain"
)

type catalogService struct {
	loggerProvider logger.Provider
	productsDAL    iface.Products
}

func NewCatalogService(loggerProvider logger.Provider, conn *connection.Connection) CatalogService {
	return &catalogService{
		loggerProvider: loggerProvider,
		productsDAL:    dal.NewProductsFirestoreWithClient(conn.Firestore),
	}
}

func (s *catalogService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	return s.productsDAL.GetProduct(ctx, productID)
}

// Search filters the catalog with a case-insensitive substring match on
// product name, category or brand. An empty query returns the full catalog.
func (s *catalogService) Search(ctx context.Context, query string) ([]*domain.Product, error) {
	products, err := s.productsDAL.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return products, nil
	}

	var matches []*domain.Product

	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Category), query) ||
			strings.Contains(strings.ToLower(p.Brand), query) {
			matches = append(matches, p)
		}
	}

	return matches, nil
}
