package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ferremax/portal/logger"
	loggerMocks "github.com/ferremax/portal/logger/mocks"
	mailerMocks "github.com/ferremax/portal/mailer/mocks"

	catalogDomain "github.com/ferremax/portal/catalog/domain"
	dalMocks "github.com/ferremax/portal/quotation/dal/mocks"
	"github.com/ferremax/portal/quotation/domain"
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

func quotationWithItems() *domain.Quotation {
	q := domain.NewQuotation(
		domain.ClientContact{Name: "Constructora Andes", Email: "compras@andes.cl"},
		domain.Vendor{UID: "vendor-1", Name: "Pedro Rojas"},
	)
	q.AddLineItem(&catalogDomain.Product{ID: "p1", Name: "Taladro", Unit: "un", BasePrice: 10000})

	return q
}

func TestQuotationService_Save(t *testing.T) {
	type fields struct {
		quotesDAL  dalMocks.Quotes
		mailerMock mailerMocks.Mailer
	}

	type args struct {
		quotation *domain.Quotation
		status    domain.Status
	}

	ctx := context.Background()

	tests := []struct {
		name        string
		args        args
		on          func(f *fields)
		wantErr     error
		wantEmailed bool
	}{
		{
			name: "sent with no items is rejected",
			args: args{
				quotation: domain.NewQuotation(domain.ClientContact{}, domain.Vendor{}),
				status:    domain.StatusSent,
			},
			wantErr: ErrEmptyQuotation,
		},
		{
			name: "empty draft is saved",
			args: args{
				quotation: domain.NewQuotation(domain.ClientContact{Email: "compras@andes.cl"}, domain.Vendor{}),
				status:    domain.StatusDraft,
			},
			on: func(f *fields) {
				f.quotesDAL.On("CreateQuote", ctx, mock.AnythingOfType("*domain.Quotation")).
					Return(func(_ context.Context, q *domain.Quotation) *domain.Quotation {
						q.ID = "doc-1"
						q.Number = "FM-Q-000001"
						return q
					}, nil)
			},
		},
		{
			name: "sent with items is saved and emailed",
			args: args{
				quotation: quotationWithItems(),
				status:    domain.StatusSent,
			},
			on: func(f *fields) {
				f.quotesDAL.On("CreateQuote", ctx, mock.AnythingOfType("*domain.Quotation")).
					Return(func(_ context.Context, q *domain.Quotation) *domain.Quotation {
						q.ID = "doc-2"
						q.Number = "FM-Q-000002"
						return q
					}, nil)
				f.mailerMock.On("SendQuotationNotification", ctx, mock.AnythingOfType("*mailer.QuotationNotification")).
					Return(nil)
			},
			wantEmailed: true,
		},
		{
			name: "email failure does not undo the save",
			args: args{
				quotation: quotationWithItems(),
				status:    domain.StatusSent,
			},
			on: func(f *fields) {
				f.quotesDAL.On("CreateQuote", ctx, mock.AnythingOfType("*domain.Quotation")).
					Return(func(_ context.Context, q *domain.Quotation) *domain.Quotation {
						q.ID = "doc-3"
						q.Number = "FM-Q-000003"
						return q
					}, nil)
				f.mailerMock.On("SendQuotationNotification", ctx, mock.AnythingOfType("*mailer.QuotationNotification")).
					Return(errors.New("sendgrid is down"))
			},
			wantEmailed: true,
		},
		{
			name: "accepted is not a valid save status",
			args: args{
				quotation: quotationWithItems(),
				status:    domain.StatusAccepted,
			},
			wantErr: ErrInvalidSaveStatus,
		},
		{
			name: "dal error is propagated",
			args: args{
				quotation: quotationWithItems(),
				status:    domain.StatusDraft,
			},
			on: func(f *fields) {
				f.quotesDAL.On("CreateQuote", ctx, mock.AnythingOfType("*domain.Quotation")).
					Return(nil, errors.New("firestore unavailable"))
			},
			wantErr: errors.New("firestore unavailable"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{}

			if tt.on != nil {
				tt.on(&f)
			}

			s := &quotationService{
				loggerProvider: testLoggerProvider(),
				quotesDAL:      &f.quotesDAL,
				quoteCreator:   &f.quotesDAL,
				mailer:         &f.mailerMock,
				timeNow:        time.Now,
			}

			saved, err := s.Save(ctx, tt.args.quotation, tt.args.status)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, saved)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, saved.ID)
				assert.NotEmpty(t, saved.Number)
				assert.Equal(t, tt.args.status, saved.Status)
			}

			if tt.wantEmailed {
				f.mailerMock.AssertNumberOfCalls(t, "SendQuotationNotification", 1)
			} else {
				f.mailerMock.AssertNotCalled(t, "SendQuotationNotification")
			}
		})
	}
}

func TestQuotationService_UpdateStatus(t *testing.T) {
	type fields struct {
		quotesDAL dalMocks.Quotes
	}

	ctx := context.Background()

	tests := []struct {
		name    string
		from    domain.Status
		to      domain.Status
		on      func(f *fields)
		wantErr error
	}{
		{
			name: "draft can be sent",
			from: domain.StatusDraft,
			to:   domain.StatusSent,
			on: func(f *fields) {
				f.quotesDAL.On("UpdateQuoteStatus", ctx, "q1", domain.StatusSent).Return(nil)
			},
		},
		{
			name: "sent can be accepted",
			from: domain.StatusSent,
			to:   domain.StatusAccepted,
			on: func(f *fields) {
				f.quotesDAL.On("UpdateQuoteStatus", ctx, "q1", domain.StatusAccepted).Return(nil)
			},
		},
		{
			name:    "draft cannot be accepted",
			from:    domain.StatusDraft,
			to:      domain.StatusAccepted,
			wantErr: ErrInvalidStatusTransition,
		},
		{
			name:    "accepted is terminal",
			from:    domain.StatusAccepted,
			to:      domain.StatusDraft,
			wantErr: ErrInvalidStatusTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{}
			f.quotesDAL.On("GetQuote", ctx, "q1").Return(&domain.Quotation{ID: "q1", Status: tt.from}, nil)

			if tt.on != nil {
				tt.on(&f)
			}

			s := &quotationService{
				loggerProvider: testLoggerProvider(),
				quotesDAL:      &f.quotesDAL,
				quoteCreator:   &f.quotesDAL,
				timeNow:        time.Now,
			}

			err := s.UpdateStatus(ctx, "q1", tt.to)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				f.quotesDAL.AssertNotCalled(t, "UpdateQuoteStatus")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuotationService_ExpireOverdue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	quotesDAL := dalMocks.Quotes{}
	quotesDAL.On("ExpireOverdueQuotes", ctx, now).Return(3, nil)

	s := &quotationService{
		loggerProvider: testLoggerProvider(),
		quotesDAL:      &quotesDAL,
		quoteCreator:   &quotesDAL,
		timeNow:        func() time.Time { return now },
	}

	expired, err := s.ExpireOverdue(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 3, expired)
}
