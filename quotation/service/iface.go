package service

import (
	"context"

	"github.com/ferremax/portal/quotation/domain"
)

//go:generate mockery --name QuotationService --output ./mocks
type QuotationService interface {
	Save(ctx context.Context, quotation *domain.Quotation, status domain.Status) (*domain.Quotation, error)
	GetQuotation(ctx context.Context, quotationID string) (*domain.Quotation, error)
	ListQuotations(ctx context.Context, vendorUID string) ([]*domain.Quotation, error)
	UpdateStatus(ctx context.Context, quotationID string, status domain.Status) error
	ExpireOverdue(ctx context.Context) (int, error)
}
