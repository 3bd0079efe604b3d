package dal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ferremax/portal/docstore"
	docsIface "github.com/ferremax/portal/docstore/iface"
	"github.com/ferremax/portal/framework/connection"

	"github.com/ferremax/portal/quotation/domain"
)

const (
	quotationsCollection = "quotations"
	countersCollection   = "counters"
	quotationsCounterDoc = "quotations"

	// quoteNumberFormat renders the human-readable quotation number the
	// client sees on the printed document.
	quoteNumberFormat = "FM-Q-%06d"
)

var ErrInvalidQuotationID = errors.New("invalid quotation id")

// QuotesFirestore is used to interact with quotations stored on Firestore.
type QuotesFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	documentsHandler   docsIface.DocumentsHandler
}

// NewQuotesFirestore returns a new QuotesFirestore instance with given
// project id.
func NewQuotesFirestore(ctx context.Context, projectID string) (*QuotesFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewQuotesFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewQuotesFirestoreWithClient returns a new QuotesFirestore using given
// client.
func NewQuotesFirestoreWithClient(fun connection.FirestoreFromContextFun) *QuotesFirestore {
	return &QuotesFirestore{
		firestoreClientFun: fun,
		documentsHandler:   docstore.DocumentHandler{},
	}
}

func (d *QuotesFirestore) GetRef(ctx context.Context, ID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(quotationsCollection).Doc(ID)
}

// CreateQuote persists the quotation snapshot and assigns the server-side
// identity: the document id and the next sequential quotation number. The
// counter increment and the document write share one transaction so numbers
// cannot be skipped or duplicated.
func (d *QuotesFirestore) CreateQuote(ctx context.Context, quotation *domain.Quotation) (*domain.Quotation, error) {
	fs := d.firestoreClientFun(ctx)

	counterRef := fs.Collection(countersCollection).Doc(quotationsCounterDoc)
	quoteRef := fs.Collection(quotationsCollection).NewDoc()

	if err := fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(counterRef)

		var value interface{}

		if err == nil {
			if value, err = snap.DataAt("value"); err != nil {
				return err
			}
		}

		next, err := nextQuoteSeq(value, err)
		if err != nil {
			return err
		}

		if err := tx.Set(counterRef, map[string]interface{}{
			"value": next,
		}); err != nil {
			return err
		}

		quotation.Number = fmt.Sprintf(quoteNumberFormat, next)

		return tx.Create(quoteRef, quotation)
	}, firestore.MaxAttempts(5)); err != nil {
		return nil, err
	}

	quotation.ID = quoteRef.ID

	return quotation, nil
}

// nextQuoteSeq derives the next sequence number from the counter read. A
// missing counter document starts the sequence at 1; any other read failure
// aborts the transaction so the sequence is never reset or duplicated.
func nextQuoteSeq(value interface{}, readErr error) (int64, error) {
	if readErr != nil {
		if status.Code(readErr) == codes.NotFound {
			return 1, nil
		}

		return 0, readErr
	}

	current, ok := value.(int64)
	if !ok {
		return 0, fmt.Errorf("quotations counter holds %T, want int64", value)
	}

	return current + 1, nil
}

// GetQuote returns a single quotation.
func (d *QuotesFirestore) GetQuote(ctx context.Context, quotationID string) (*domain.Quotation, error) {
	if quotationID == "" {
		return nil, ErrInvalidQuotationID
	}

	snap, err := d.documentsHandler.Get(ctx, d.GetRef(ctx, quotationID))
	if err != nil {
		return nil, err
	}

	var quotation domain.Quotation

	if err := snap.DataTo(&quotation); err != nil {
		return nil, err
	}

	quotation.ID = snap.ID()

	return &quotation, nil
}

// ListQuotes returns the vendor's quotations, newest first.
func (d *QuotesFirestore) ListQuotes(ctx context.Context, vendorUID string) ([]*domain.Quotation, error) {
	query := d.firestoreClientFun(ctx).
		Collection(quotationsCollection).
		Where("vendor.uid", "==", vendorUID).
		OrderBy("createdAt", firestore.Desc)

	snaps, err := d.documentsHandler.GetAll(ctx, query)
	if err != nil {
		return nil, err
	}

	var quotations []*domain.Quotation

	for _, snap := range snaps {
		var quotation domain.Quotation

		if err := snap.DataTo(&quotation); err != nil {
			return nil, err
		}

		quotation.ID = snap.ID()

		quotations = append(quotations, &quotation)
	}

	return quotations, nil
}

// UpdateQuoteStatus updates the lifecycle status of a quotation.
func (d *QuotesFirestore) UpdateQuoteStatus(ctx context.Context, quotationID string, status domain.Status) error {
	if quotationID == "" {
		return ErrInvalidQuotationID
	}

	_, err := d.documentsHandler.Update(ctx, d.GetRef(ctx, quotationID), []firestore.Update{
		{Path: "status", Value: status},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})

	return err
}

// ExpireOverdueQuotes flips sent quotations whose validity date has passed to
// expired. Returns the number of quotations updated.
func (d *QuotesFirestore) ExpireOverdueQuotes(ctx context.Context, now time.Time) (int, error) {
	query := d.firestoreClientFun(ctx).
		Collection(quotationsCollection).
		Where("status", "==", domain.StatusSent).
		Where("validUntil", "<", now)

	snaps, err := d.documentsHandler.GetAll(ctx, query)
	if err != nil {
		return 0, err
	}

	var expired int

	for _, snap := range snaps {
		if _, err := d.documentsHandler.Update(ctx, d.GetRef(ctx, snap.ID()), []firestore.Update{
			{Path: "status", Value: domain.StatusExpired},
			{Path: "updatedAt", Value: firestore.ServerTimestamp},
		}); err != nil {
			return expired, err
		}

		expired++
	}

	return expired, nil
}
