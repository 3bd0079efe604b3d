package handlers

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/ferremax/portal/docstore"
	"github.com/ferremax/portal/framework/connection"
	"github.com/ferremax/portal/framework/web"
	"github.com/ferremax/portal/identity"
	"github.com/ferremax/portal/logger"
	"github.com/ferremax/portal/mailer"

	catalogService "github.com/ferremax/portal/catalog/service"
	"github.com/ferremax/portal/quotation/dal"
	"github.com/ferremax/portal/quotation/domain"
	"github.com/ferremax/portal/quotation/service"
)

type Quotation struct {
	loggerProvider logger.Provider
	service        service.QuotationService
	catalog        catalogService.CatalogService
}

func NewQuotation(loggerProvider logger.Provider, conn *connection.Connection, m mailer.Mailer) *Quotation {
	quotationService := service.NewQuotationService(loggerProvider, conn, m)

	// Deployments behind the corporate gateway persist new quotations through
	// the documents HTTP API instead of writing to Firestore directly.
	if baseURL := os.Getenv("DOCUMENTS_API_URL"); baseURL != "" {
		api := dal.NewQuotesAPI(baseURL, os.Getenv("DOCUMENTS_API_KEY"))
		quotationService = service.NewQuotationServiceWithAPI(loggerProvider, conn, m, api)
	}

	return &Quotation{
		loggerProvider,
		quotationService,
		catalogService.NewCatalogService(loggerProvider, conn),
	}
}

// CreateQuotation handles POST /quotations. The payload is replayed through
// the builder so line pricing follows the same coercion and recompute rules
// as interactive edits.
func (h *Quotation) CreateQuotation(ctx *gin.Context) error {
	var req domain.CreateQuotationRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	actor := identity.FromContext(ctx)

	builder := service.NewBuilder(h.service, req.Client, domain.Vendor{
		UID:   actor.UID,
		Name:  actor.Name,
		Email: actor.Email,
	})

	for _, row := range req.Items {
		product, err := h.catalog.GetProduct(ctx, row.ProductID)
		if err != nil {
			if errors.Is(err, docstore.ErrNotFound) {
				return web.NewRequestError(errors.New("unknown product "+row.ProductID), http.StatusBadRequest)
			}

			return web.NewRequestError(err, http.StatusInternalServerError)
		}

		item, err := builder.AddItem(product)
		if err != nil {
			return web.NewRequestError(err, http.StatusInternalServerError)
		}

		if err := builder.UpdateItem(item.ID, domain.FieldQuantity, row.Quantity); err != nil {
			return web.NewRequestError(err, http.StatusInternalServerError)
		}

		if row.UnitPrice != nil {
			if err := builder.UpdateItem(item.ID, domain.FieldUnitPrice, *row.UnitPrice); err != nil {
				return web.NewRequestError(err, http.StatusInternalServerError)
			}
		}

		if row.Discount != 0 {
			if err := builder.UpdateItem(item.ID, domain.FieldDiscount, row.Discount); err != nil {
				return web.NewRequestError(err, http.StatusInternalServerError)
			}
		}
	}

	if err := builder.SetDiscount(req.Discount); err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	if err := builder.SetTaxRate(req.TaxRate); err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	if !req.ValidUntil.IsZero() {
		if err := builder.SetValidUntil(req.ValidUntil); err != nil {
			return web.NewRequestError(err, http.StatusInternalServerError)
		}
	}

	if req.Notes != "" || req.Terms != "" {
		if err := builder.SetNotes(req.Notes, req.Terms); err != nil {
			return web.NewRequestError(err, http.StatusInternalServerError)
		}
	}

	saved, err := builder.Save(ctx, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyQuotation),
			errors.Is(err, service.ErrInvalidSaveStatus):
			return web.NewRequestError(err, http.StatusBadRequest)
		default:
			return web.NewRequestError(err, http.StatusInternalServerError)
		}
	}

	return web.Respond(ctx, saved, http.StatusCreated)
}

// GetQuotation handles GET /quotations/:quotationID
func (h *Quotation) GetQuotation(ctx *gin.Context) error {
	quotation, err := h.service.GetQuotation(ctx, ctx.Param("quotationID"))
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, quotation, http.StatusOK)
}

// ListQuotations handles GET /quotations. Vendors see their own quotations;
// admins may inspect another vendor with ?vendor=.
func (h *Quotation) ListQuotations(ctx *gin.Context) error {
	actor := identity.FromContext(ctx)

	vendorUID := actor.UID
	if actor.Role == identity.RoleAdmin {
		if v := ctx.Query("vendor"); v != "" {
			vendorUID = v
		}
	}

	quotations, err := h.service.ListQuotations(ctx, vendorUID)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, quotations, http.StatusOK)
}

// UpdateStatus handles PATCH /quotations/:quotationID/status
func (h *Quotation) UpdateStatus(ctx *gin.Context) error {
	quotationID := ctx.Param("quotationID")

	var req domain.UpdateQuotationStatusRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := h.service.UpdateStatus(ctx, quotationID, req.Status); err != nil {
		switch {
		case errors.Is(err, docstore.ErrNotFound):
			return web.NewRequestError(err, http.StatusNotFound)
		case errors.Is(err, service.ErrInvalidStatusTransition):
			return web.NewRequestError(err, http.StatusConflict)
		default:
			return web.NewRequestError(err, http.StatusInternalServerError)
		}
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

// ExpireOverdue handles POST /quotations/expire, the scheduled task endpoint
// that flips overdue sent quotations to expired.
func (h *Quotation) ExpireOverdue(ctx *gin.Context) error {
	expired, err := h.service.ExpireOverdue(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, domain.ExpireOverdueResponse{Expired: expired}, http.StatusOK)
}
