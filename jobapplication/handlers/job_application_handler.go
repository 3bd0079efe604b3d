package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ferremax/portal/docstore"
	"github.com/ferremax/portal/filestorage"
	"github.com/ferremax/portal/framework/connection"
	"github.com/ferremax/portal/framework/web"
	"github.com/ferremax/portal/logger"
	"github.com/ferremax/portal/mailer"

	"github.com/ferremax/portal/jobapplication/domain"
	"github.com/ferremax/portal/jobapplication/service"
)

const attachmentsCategory = "job-applications"

type JobApplication struct {
	loggerProvider logger.Provider
	service        service.ApplicationService
	fileStorage    filestorage.Service
	uploadConfig   filestorage.Config
}

func NewJobApplication(loggerProvider logger.Provider, conn *connection.Connection, m mailer.Mailer) *JobApplication {
	return &JobApplication{
		loggerProvider: loggerProvider,
		service:        service.NewApplicationService(loggerProvider, conn, m),
		fileStorage:    filestorage.NewService(loggerProvider, conn),
		uploadConfig: filestorage.Config{
			MaxFiles:    3,
			MaxFileSize: 5 << 20,
		},
	}
}

// CreateApplication handles POST /careers/applications. The payload is
// replayed through the wizard so every step's gating predicate is enforced
// server side, not just in the browser.
func (h *JobApplication) CreateApplication(ctx *gin.Context) error {
	var form domain.FormState

	if err := ctx.ShouldBindJSON(&form); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	wizard := service.NewWizard(h.service, form.FullName, form.Email)

	// Skills from the wire are rebuilt through AddSkill so the stored list
	// keeps the ordered-set semantics of interactive edits.
	skills := form.Skills
	form.Skills = nil
	*wizard.Form() = form

	for _, skill := range skills {
		wizard.Form().AddSkill(skill)
	}

	for wizard.Step() < service.StepConfirmation {
		if err := wizard.Next(); err != nil {
			return validationError(err)
		}
	}

	created, err := wizard.Submit(ctx)
	if err != nil {
		var stepErr *service.StepValidationError
		if errors.As(err, &stepErr) {
			return validationError(err)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, created, http.StatusCreated)
}

// validationError surfaces every unmet field of the failing step inline.
func validationError(err error) error {
	var stepErr *service.StepValidationError
	if errors.As(err, &stepErr) {
		return web.NewValidationError(err, stepErr.Fields)
	}

	return web.NewRequestError(err, http.StatusBadRequest)
}

// GetApplication handles GET /careers/applications/:applicationID
func (h *JobApplication) GetApplication(ctx *gin.Context) error {
	application, err := h.service.GetApplication(ctx, ctx.Param("applicationID"))
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, application, http.StatusOK)
}

// ListApplications handles GET /careers/applications, the HR review queue.
func (h *JobApplication) ListApplications(ctx *gin.Context) error {
	applications, err := h.service.ListApplications(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, applications, http.StatusOK)
}

// UpdateStatus handles PATCH /careers/applications/:applicationID/status
func (h *JobApplication) UpdateStatus(ctx *gin.Context) error {
	applicationID := ctx.Param("applicationID")

	var req domain.UpdateApplicationStatusRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := h.service.UpdateStatus(ctx, applicationID, req.Status); err != nil {
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

// UploadAttachments handles POST /careers/applications/:applicationID/attachments
// as a multipart form. The attachment count and per-file size limits are
// enforced here, at the edge.
func (h *JobApplication) UploadAttachments(ctx *gin.Context) error {
	applicationID := ctx.Param("applicationID")

	form, err := ctx.MultipartForm()
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	files := form.File["files"]
	if len(files) == 0 {
		return web.NewRequestError(errors.New("no files in request"), http.StatusBadRequest)
	}

	var attachments []domain.Attachment

	for i, fileHeader := range files {
		if err := h.uploadConfig.Check(i, fileHeader.Size); err != nil {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		file, err := fileHeader.Open()
		if err != nil {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		uploaded, err := h.fileStorage.Upload(ctx, &filestorage.UploadRequest{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Category:    attachmentsCategory,
			Data:        file,
		})

		file.Close()

		if err != nil {
			return web.NewRequestError(err, http.StatusInternalServerError)
		}

		attachments = append(attachments, domain.Attachment{
			URL:         uploaded.URL,
			Filename:    uploaded.Filename,
			ContentType: uploaded.ContentType,
			Size:        uploaded.Size,
		})
	}

	if err := h.service.AddAttachments(ctx, applicationID, attachments); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, attachments, http.StatusCreated)
}
