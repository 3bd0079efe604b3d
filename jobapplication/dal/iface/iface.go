package iface

import (
	"context"

	"github.com/ferremax/portal/jobapplication/domain"
)

//go:generate mockery --name Applications --output ../mocks --outpkg mocks
type Applications interface {
	CreateApplication(ctx context.Context, application *domain.JobApplication) (*domain.JobApplication, error)
	GetApplication(ctx context.Context, applicationID string) (*domain.JobApplication, error)
	ListApplications(ctx context.Context) ([]*domain.JobApplication, error)
	UpdateApplicationStatus(ctx context.Context, applicationID string, status domain.Status) error
	AppendAttachments(ctx context.Context, applicationID string, attachments []domain.Attachment) error
}
