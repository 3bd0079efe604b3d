package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ferremax/portal/framework/connection"
	"github.com/ferremax/portal/framework/web"
	"github.com/ferremax/portal/logger"

	"github.com/ferremax/portal/catalog/service"
)

type Catalog struct {
	loggerProvider logger.Provider
	service        service.CatalogService
}

func NewCatalog(loggerProvider logger.Provider, conn *connection.Connection) *Catalog {
	return &Catalog{
		loggerProvider,
		service.NewCatalogService(loggerProvider, conn),
	}
}

// SearchProducts handles GET /catalog/products?q=
func (h *Catalog) SearchProducts(ctx *gin.Context) error {
	products, err := h.service.Search(ctx, ctx.Query("q"))
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, products, http.StatusOK)
}
