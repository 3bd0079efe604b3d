package service

import (
	"context"

	"github.com/ferremax/portal/framework/connection"
	"github.com/ferremax/portal/logger"
	"github.com/ferremax/portal/mailer"

	"github.com/ferremax/portal/jobapplication/dal"
	"github.com/ferremax/portal/jobapplication/dal/iface"
	"github.com/ferremax/portal/jobapplication/domain"
)

type applicationService struct {
	loggerProvider  logger.Provider
	applicationsDAL iface.Applications
	mailer          mailer.Mailer
}

func NewApplicationService(loggerProvider logger.Provider, conn *connection.Connection, m mailer.Mailer) ApplicationService {
	return &applicationService{
		loggerProvider:  loggerProvider,
		applicationsDAL: dal.NewApplicationsFirestoreWithClient(conn.Firestore),
		mailer:          m,
	}
}

// SubmitApplication persists the accumulated form as a single snapshot and
// confirms receipt to the applicant by email. The email is best effort, a
// delivery failure does not undo the submission.
func (s *applicationService) SubmitApplication(ctx context.Context, form domain.FormState) (*domain.JobApplication, error) {
	l := s.loggerProvider(ctx)

	application := &domain.JobApplication{
		Form:   form,
		Status: domain.StatusReceived,
	}

	created, err := s.applicationsDAL.CreateApplication(ctx, application)
	if err != nil {
		return nil, err
	}

	l.SetLabel(logger.LabelApplicationID, created.ID)
	l.Infof("application from %s received", created.Form.Email)

	if err := s.mailer.SendApplicationReceivedNotification(ctx, &mailer.ApplicationReceivedNotification{
		Email:    created.Form.Email,
		Name:     created.Form.FullName,
		Position: created.Form.Position,
		Branch:   created.Form.Branch,
	}); err != nil {
		l.Warningf("failed to send application confirmation to %s: %s", created.Form.Email, err)
	}

	return created, nil
}

func (s *applicationService) GetApplication(ctx context.Context, applicationID string) (*domain.JobApplication, error) {
	return s.applicationsDAL.GetApplication(ctx, applicationID)
}

func (s *applicationService) ListApplications(ctx context.Context) ([]*domain.JobApplication, error) {
	return s.applicationsDAL.ListApplications(ctx)
}

// AddAttachments stores uploaded documents on an existing application.
func (s *applicationService) AddAttachments(ctx context.Context, applicationID string, attachments []domain.Attachment) error {
	if _, err := s.applicationsDAL.GetApplication(ctx, applicationID); err != nil {
		return err
	}

	return s.applicationsDAL.AppendAttachments(ctx, applicationID, attachments)
}

// UpdateStatus moves an application through review. Only
// received->in_review and in_review->accepted/rejected are allowed.
func (s *applicationService) UpdateStatus(ctx context.Context, applicationID string, status domain.Status) error {
	application, err := s.applicationsDAL.GetApplication(ctx, applicationID)
	if err != nil {
		return err
	}

	if !application.Status.CanTransitionTo(status) {
		return ErrInvalidStatusTransition
	}

	return s.applicationsDAL.UpdateApplicationStatus(ctx, applicationID, status)
}
