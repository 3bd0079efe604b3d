package service

import "errors"

var (
	// ErrEmptyQuotation is returned when a quotation with no line items is
	// saved for sending. Empty drafts are fine.
	ErrEmptyQuotation = errors.New("quotation has no line items")

	ErrInvalidSaveStatus       = errors.New("quotation can only be saved as draft or sent")
	ErrInvalidStatusTransition = errors.New("invalid quotation status transition")
)
