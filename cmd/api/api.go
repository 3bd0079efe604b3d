package api

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	catalogHandlers "github.com/ferremax/portal/catalog/handlers"
	"github.com/ferremax/portal/framework/connection"
	"github.com/ferremax/portal/framework/mid"
	"github.com/ferremax/portal/framework/web"
	"github.com/ferremax/portal/identity"
	jobHandlers "github.com/ferremax/portal/jobapplication/handlers"
	"github.com/ferremax/portal/logger"
	"github.com/ferremax/portal/mailer"
	quotationHandlers "github.com/ferremax/portal/quotation/handlers"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection) *API {
	return &API{
		shutdown,
		logging,
		conn,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns
// http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	backgroundContext := context.Background()

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())

	mailerService, err := mailer.NewService(backgroundContext, loggerProvider)
	if err != nil {
		panic(err)
	}

	identityService, err := identity.NewService(backgroundContext)
	if err != nil {
		panic(err)
	}

	catalog := catalogHandlers.NewCatalog(loggerProvider, a.conn)
	quotations := quotationHandlers.NewQuotation(loggerProvider, a.conn, mailerService)
	applications := jobHandlers.NewJobApplication(loggerProvider, a.conn, mailerService)

	app.Get("/health", func(ctx *gin.Context) error {
		return web.Respond(ctx, nil, http.StatusOK)
	})

	// Public careers endpoints. Applicants are not signed in.
	careersPublic := web.NewGroup(app, "/api/v1/careers")
	careersPublic.Post("/applications", applications.CreateApplication)
	careersPublic.Post("/applications/:applicationID/attachments",
		applications.UploadAttachments,
		mid.ValidatePathParamNotEmpty("applicationID"),
	)

	apiGroup := web.NewGroup(app, "/api/v1", mid.Identity(identityService))

	catalogGroup := apiGroup.NewSubgroup("/catalog")
	catalogGroup.Get("/products", catalog.SearchProducts)

	quotationsGroup := apiGroup.NewSubgroup("/quotations",
		mid.RequireRoles(identity.RoleVendor, identity.RoleBranchManager, identity.RoleAdmin),
	)
	quotationsGroup.Post("", quotations.CreateQuotation)
	quotationsGroup.Get("", quotations.ListQuotations)
	quotationsGroup.Get("/:quotationID",
		quotations.GetQuotation,
		mid.ValidatePathParamNotEmpty("quotationID"),
	)
	quotationsGroup.Patch("/:quotationID/status",
		quotations.UpdateStatus,
		mid.ValidatePathParamNotEmpty("quotationID"),
	)
	quotationsGroup.Post("/expire",
		quotations.ExpireOverdue,
		mid.RequireRoles(identity.RoleAdmin),
	)

	// HR review queue.
	hrGroup := apiGroup.NewSubgroup("/careers/applications",
		mid.RequireRoles(identity.RoleHR, identity.RoleAdmin),
	)
	hrGroup.Get("", applications.ListApplications)
	hrGroup.Get("/:applicationID",
		applications.GetApplication,
		mid.ValidatePathParamNotEmpty("applicationID"),
	)
	hrGroup.Patch("/:applicationID/status",
		applications.UpdateStatus,
		mid.ValidatePathParamNotEmpty("applicationID"),
	)

	return app
}
