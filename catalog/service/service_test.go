package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ferremax/portal/catalog/dal/mocks"
	"github.com/ferremax/portal/catalog/domain"
)

func TestCatalogService_Search(t *testing.T) {
	ctx := context.Background()

	products := []*domain.Product{
		{ID: "p1", Name: "Taladro Percutor 650W", Brand: "Bosch", Category: "Herramientas Eléctricas"},
		{ID: "p2", Name: "Martillo Carpintero", Brand: "Stanley", Category: "Herramientas Manuales"},
		{ID: "p3", Name: "Cemento Portland 25kg", Brand: "Melón", Category: "Construcción"},
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "empty query returns all", query: "", wantIDs: []string{"p1", "p2", "p3"}},
		{name: "matches name substring", query: "taladro", wantIDs: []string{"p1"}},
		{name: "case insensitive", query: "MARTILLO", wantIDs: []string{"p2"}},
		{name: "matches category", query: "herramientas", wantIDs: []string{"p1", "p2"}},
		{name: "matches brand", query: "bosch", wantIDs: []string{"p1"}},
		{name: "no match", query: "sierra", wantIDs: nil},
		{name: "whitespace trimmed", query: "  cemento  ", wantIDs: []string{"p3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productsDAL := &mocks.Products{}
			productsDAL.On("ListProducts", ctx).Return(products, nil)

			s := &catalogService{productsDAL: productsDAL}

			got, err := s.Search(ctx, tt.query)
			assert.NoError(t, err)

			var gotIDs []string
			for _, p := range got {
				gotIDs = append(gotIDs, p.ID)
			}

			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}
