package iface

import (
	"context"
	"time"

	"github.com/ferremax/portal/quotation/domain"
)

//go:generate mockery --name Quotes --output ../mocks --outpkg mocks
type Quotes interface {
	QuoteCreator
	GetQuote(ctx context.Context, quotationID string) (*domain.Quotation, error)
	ListQuotes(ctx context.Context, vendorUID string) ([]*domain.Quotation, error)
	UpdateQuoteStatus(ctx context.Context, quotationID string, status domain.Status) error
	ExpireOverdueQuotes(ctx context.Context, now time.Time) (int, error)
}

// QuoteCreator is the minimal persistence surface the builder needs to save
// a snapshot. The documents HTTP API path implements only this.
//
//go:generate mockery --name QuoteCreator --output ../mocks --outpkg mocks
type QuoteCreator interface {
	CreateQuote(ctx context.Context, quotation *domain.Quotation) (*domain.Quotation, error)
}
