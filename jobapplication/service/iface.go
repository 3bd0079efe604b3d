package service

import (
	"context"

	"github.com/ferremax/portal/jobapplication/domain"
)

//go:generate mockery --name ApplicationService --output ./mocks
type ApplicationService interface {
	SubmitApplication(ctx context.Context, form domain.FormState) (*domain.JobApplication, error)
	GetApplication(ctx context.Context, applicationID string) (*domain.JobApplication, error)
	ListApplications(ctx context.Context) ([]*domain.JobApplication, error)
	UpdateStatus(ctx context.Context, applicationID string, status domain.Status) error
	AddAttachments(ctx context.Context, applicationID string, attachments []domain.Attachment) error
}
