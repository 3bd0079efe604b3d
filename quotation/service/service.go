package service

import (
	"context"
	"time"

	"github.com/ferremax/portal/framework/connection"
	"github.com/ferremax/portal/logger"
	"github.com/ferremax/portal/mailer"

	"github.com/ferremax/portal/quotation/dal"
	"github.com/ferremax/portal/quotation/dal/iface"
	"github.com/ferremax/portal/quotation/domain"
)

type quotationService struct {
	loggerProvider logger.Provider
	quotesDAL      iface.Quotes
	// quoteCreator is the write path for new quotations. It is the Firestore
	// DAL by default and the documents HTTP API when one is configured.
	quoteCreator iface.QuoteCreator
	mailer       mailer.Mailer
	timeNow      func() time.Time
}

func NewQuotationService(loggerProvider logger.Provider, conn *connection.Connection, m mailer.Mailer) QuotationService {
	quotesDAL := dal.NewQuotesFirestoreWithClient(conn.Firestore)

	return &quotationService{
		loggerProvider: loggerProvider,
		quotesDAL:      quotesDAL,
		quoteCreator:   quotesDAL,
		mailer:         m,
		timeNow:        time.Now,
	}
}

// NewQuotationServiceWithAPI routes quotation creation through the documents
// HTTP API while reads and status updates keep going to Firestore.
func NewQuotationServiceWithAPI(loggerProvider logger.Provider, conn *connection.Connection, m mailer.Mailer, api *dal.QuotesAPI) QuotationService {
	return &quotationService{
		loggerProvider: loggerProvider,
		quotesDAL:      dal.NewQuotesFirestoreWithClient(conn.Firestore),
		quoteCreator:   api,
		mailer:         m,
		timeNow:        time.Now,
	}
}

// Save recomputes the totals and persists the quotation snapshot with the
// requested status. Saving as sent requires at least one line item and
// triggers the client notification email; a draft may be empty. The email is
// best effort, a delivery failure does not undo the save.
func (s *quotationService) Save(ctx context.Context, quotation *domain.Quotation, status domain.Status) (*domain.Quotation, error) {
	l := s.loggerProvider(ctx)

	if status != domain.StatusDraft && status != domain.StatusSent {
		return nil, ErrInvalidSaveStatus
	}

	if status == domain.StatusSent && len(quotation.Items) == 0 {
		return nil, ErrEmptyQuotation
	}

	quotation.Status = status
	quotation.Recompute()

	created, err := s.quoteCreator.CreateQuote(ctx, quotation)
	if err != nil {
		return nil, err
	}

	l.SetLabel(logger.LabelQuotationID, created.ID)
	l.Infof("quotation %s saved as %s", created.Number, created.Status)

	if created.Status == domain.StatusSent && created.Client.Email != "" {
		if err := s.mailer.SendQuotationNotification(ctx, &mailer.QuotationNotification{
			Email:      created.Client.Email,
			Name:       created.Client.Name,
			Number:     created.Number,
			VendorName: created.Vendor.Name,
			Total:      created.Totals.Total,
			ValidUntil: created.ValidUntil,
		}); err != nil {
			l.Warningf("failed to send quotation %s notification: %s", created.Number, err)
		}
	}

	return created, nil
}

func (s *quotationService) GetQuotation(ctx context.Context, quotationID string) (*domain.Quotation, error) {
	return s.quotesDAL.GetQuote(ctx, quotationID)
}

func (s *quotationService) ListQuotations(ctx context.Context, vendorUID string) ([]*domain.Quotation, error) {
	return s.quotesDAL.ListQuotes(ctx, vendorUID)
}

// UpdateStatus moves a quotation along its lifecycle. Transitions outside
// draft->sent and sent->accepted/rejected/expired are rejected.
func (s *quotationService) UpdateStatus(ctx context.Context, quotationID string, status domain.Status) error {
	quotation, err := s.quotesDAL.GetQuote(ctx, quotationID)
	if err != nil {
		return err
	}

	if !quotation.Status.CanTransitionTo(status) {
		return ErrInvalidStatusTransition
	}

	return s.quotesDAL.UpdateQuoteStatus(ctx, quotationID, status)
}

// ExpireOverdue marks sent quotations past their validity date as expired.
func (s *quotationService) ExpireOverdue(ctx context.Context) (int, error) {
	l := s.loggerProvider(ctx)

	expired, err := s.quotesDAL.ExpireOverdueQuotes(ctx, s.timeNow())
	if err != nil {
		return expired, err
	}

	if expired > 0 {
		l.Infof("expired %d overdue quotations", expired)
	}

	return expired, nil
}
