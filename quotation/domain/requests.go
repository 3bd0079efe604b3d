package domain

import "time"

// CreateLineItemRequest is one row of the builder payload. Quantity, price
// and discount go through the same coercion rules as interactive edits.
type CreateLineItemRequest struct {
	ProductID string   `json:"productId" binding:"required"`
	Quantity  float64  `json:"quantity"`
	UnitPrice *float64 `json:"unitPrice"`
	Discount  float64  `json:"discountPct"`
}

type CreateQuotationRequest struct {
	Client     ClientContact           `json:"client" binding:"required"`
	Items      []CreateLineItemRequest `json:"items" binding:"dive"`
	Discount   float64                 `json:"discountPct"`
	TaxRate    float64                 `json:"taxRatePct"`
	ValidUntil time.Time               `json:"validUntil"`
	Notes      string                  `json:"notes"`
	Terms      string                  `json:"terms"`
	Status     Status                  `json:"status" binding:"required,oneof=draft sent"`
}

type UpdateQuotationStatusRequest struct {
	Status Status `json:"status" binding:"required,oneof=sent accepted rejected expired"`
}

type ExpireOverdueResponse struct {
	Expired int `json:"expired"`
}
