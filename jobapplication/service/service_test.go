package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ferremax/portal/logger"
	loggerMocks "github.com/ferremax/portal/logger/mocks"
	mailerMocks "github.com/ferremax/portal/mailer/mocks"

	dalMocks "github.com/ferremax/portal/jobapplication/dal/mocks"
	"github.com/ferremax/portal/jobapplication/domain"
)

func testLoggerProvider() logger.Provider {
	l := &loggerMocks.ILogger{}
	l.On("SetLabel", mock.Anything, mock.Anything).Maybe()
	l.On("Infof", mock.Anything, mock.Anything).Maybe()
	l.On("Infof", mock.Anything, mock.Anything, mock.Anything).Maybe()
	l.On("Warningf", mock.Anything, mock.Anything, mock.Anything).Maybe()

	return func(ctx context.Context) logger.ILogger {
		return l
	}
}

func submittedForm() domain.FormState {
	return domain.FormState{
		FullName:               "Camila Herrera",
		Email:                  "camila.herrera@gmail.com",
		Phone:                  "+56 9 1234 5678",
		City:                   "Valparaíso",
		Position:               "Vendedor de salón",
		Branch:                 "Valparaíso Centro",
		YearsExperience:        "3-5",
		AvailableFrom:          "2026-10-01",
		Education:              "media-completa",
		Experience:             "5 años en retail",
		CoverLetter:            "Estimados",
		DataProcessingConsent:  true,
		BackgroundCheckConsent: true,
	}
}

func TestApplicationService_SubmitApplication(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshot is persisted and confirmed by email", func(t *testing.T) {
		applicationsDAL := dalMocks.Applications{}
		applicationsDAL.On("CreateApplication", ctx, mock.AnythingOfType("*domain.JobApplication")).
			Return(func(_ context.Context, a *domain.JobApplication) *domain.JobApplication {
				a.ID = "app-1"
				return a
			}, nil).
			Once()

		mailerMock := mailerMocks.Mailer{}
		mailerMock.On("SendApplicationReceivedNotification", ctx, mock.AnythingOfType("*mailer.ApplicationReceivedNotification")).
			Return(nil).
			Once()

		s := &applicationService{
			loggerProvider:  testLoggerProvider(),
			applicationsDAL: &applicationsDAL,
			mailer:          &mailerMock,
		}

		created, err := s.SubmitApplication(ctx, submittedForm())

		assert.NoError(t, err)
		assert.Equal(t, "app-1", created.ID)
		assert.Equal(t, domain.StatusReceived, created.Status)

		applicationsDAL.AssertExpectations(t)
		mailerMock.AssertExpectations(t)
	})

	t.Run("email failure does not undo the submission", func(t *testing.T) {
		applicationsDAL := dalMocks.Applications{}
		applicationsDAL.On("CreateApplication", ctx, mock.AnythingOfType("*domain.JobApplication")).
			Return(func(_ context.Context, a *domain.JobApplication) *domain.JobApplication {
				a.ID = "app-2"
				return a
			}, nil).
			Once()

		mailerMock := mailerMocks.Mailer{}
		mailerMock.On("SendApplicationReceivedNotification", ctx, mock.AnythingOfType("*mailer.ApplicationReceivedNotification")).
			Return(errors.New("sendgrid is down")).
			Once()

		s := &applicationService{
			loggerProvider:  testLoggerProvider(),
			applicationsDAL: &applicationsDAL,
			mailer:          &mailerMock,
		}

		created, err := s.SubmitApplication(ctx, submittedForm())

		assert.NoError(t, err)
		assert.Equal(t, "app-2", created.ID)
	})

	t.Run("dal error is propagated and no email goes out", func(t *testing.T) {
		applicationsDAL := dalMocks.Applications{}
		applicationsDAL.On("CreateApplication", ctx, mock.AnythingOfType("*domain.JobApplication")).
			Return(nil, errors.New("firestore unavailable")).
			Once()

		mailerMock := mailerMocks.Mailer{}

		s := &applicationService{
			loggerProvider:  testLoggerProvider(),
			applicationsDAL: &applicationsDAL,
			mailer:          &mailerMock,
		}

		_, err := s.SubmitApplication(ctx, submittedForm())

		assert.EqualError(t, err, "firestore unavailable")
		mailerMock.AssertNotCalled(t, "SendApplicationReceivedNotification")
	})
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		from    domain.Status
		to      domain.Status
		wantErr error
	}{
		{name: "received moves to review", from: domain.StatusReceived, to: domain.StatusInReview},
		{name: "review can accept", from: domain.StatusInReview, to: domain.StatusAccepted},
		{name: "review can reject", from: domain.StatusInReview, to: domain.StatusRejected},
		{name: "received cannot be accepted directly", from: domain.StatusReceived, to: domain.StatusAccepted, wantErr: ErrInvalidStatusTransition},
		{name: "accepted is terminal", from: domain.StatusAccepted, to: domain.StatusInReview, wantErr: ErrInvalidStatusTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applicationsDAL := dalMocks.Applications{}
			applicationsDAL.On("GetApplication", ctx, "app-1").
				Return(&domain.JobApplication{ID: "app-1", Status: tt.from}, nil)

			if tt.wantErr == nil {
				applicationsDAL.On("UpdateApplicationStatus", ctx, "app-1", tt.to).Return(nil)
			}

			s := &applicationService{
				loggerProvider:  testLoggerProvider(),
				applicationsDAL: &applicationsDAL,
			}

			err := s.UpdateStatus(ctx, "app-1", tt.to)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				applicationsDAL.AssertNotCalled(t, "UpdateApplicationStatus")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
