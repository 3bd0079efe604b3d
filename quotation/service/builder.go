package service

import (
	"context"
	"time"

	"github.com/qmuntal/stateless"

	catalogDomain "github.com/ferremax/portal/catalog/domain"
	"github.com/ferremax/portal/quotation/domain"
)

// Builder states.
const (
	StateIdle    = "idle"
	StateEditing = "editing"
	StateSaving  = "saving"
	StateClosed  = "closed"
)

const (
	triggerEdit          = "edit"
	triggerSave          = "save"
	triggerSaveSucceeded = "saveSucceeded"
	triggerSaveFailed    = "saveFailed"
)

// Builder drives the interactive construction of a quotation. Edits are only
// accepted before the quotation is saved; a failed save drops the builder
// back to editing with all line items intact, a successful save closes it.
type Builder struct {
	service   QuotationService
	quotation *domain.Quotation
	machine   *stateless.StateMachine
}

func NewBuilder(svc QuotationService, client domain.ClientContact, vendor domain.Vendor) *Builder {
	machine := stateless.NewStateMachine(StateIdle)

	machine.Configure(StateIdle).
		Permit(triggerEdit, StateEditing).
		Permit(triggerSave, StateSaving)

	machine.Configure(StateEditing).
		PermitReentry(triggerEdit).
		Permit(triggerSave, StateSaving)

	machine.Configure(StateSaving).
		Permit(triggerSaveSucceeded, StateClosed).
		Permit(triggerSaveFailed, StateEditing)

	return &Builder{
		service:   svc,
		quotation: domain.NewQuotation(client, vendor),
		machine:   machine,
	}
}

// State returns the current builder state.
func (b *Builder) State() string {
	return b.machine.MustState().(string)
}

// Quotation exposes the aggregate under construction.
func (b *Builder) Quotation() *domain.Quotation {
	return b.quotation
}

func (b *Builder) edit(mutate func()) error {
	if err := b.machine.Fire(triggerEdit); err != nil {
		return err
	}

	mutate()

	return nil
}

func (b *Builder) AddItem(product *catalogDomain.Product) (*domain.LineItem, error) {
	var item *domain.LineItem

	err := b.edit(func() {
		item = b.quotation.AddLineItem(product)
	})

	return item, err
}

func (b *Builder) UpdateItem(id string, field domain.LineItemField, value float64) error {
	return b.edit(func() {
		b.quotation.UpdateLineItem(id, field, value)
	})
}

func (b *Builder) RemoveItem(id string) error {
	return b.edit(func() {
		b.quotation.RemoveLineItem(id)
	})
}

func (b *Builder) SetDiscount(pct float64) error {
	return b.edit(func() {
		b.quotation.SetDiscount(pct)
	})
}

func (b *Builder) SetTaxRate(pct float64) error {
	return b.edit(func() {
		b.quotation.SetTaxRate(pct)
	})
}

func (b *Builder) SetValidUntil(t time.Time) error {
	return b.edit(func() {
		b.quotation.ValidUntil = t
	})
}

func (b *Builder) SetNotes(notes, terms string) error {
	return b.edit(func() {
		b.quotation.Notes = notes
		b.quotation.Terms = terms
	})
}

// Save persists the quotation with the requested status. On success the
// builder is closed and further edits are rejected. On failure the builder
// returns to editing so the user can retry without losing work.
func (b *Builder) Save(ctx context.Context, status domain.Status) (*domain.Quotation, error) {
	if err := b.machine.FireCtx(ctx, triggerSave); err != nil {
		return nil, err
	}

	saved, err := b.service.Save(ctx, b.quotation, status)
	if err != nil {
		if fireErr := b.machine.Fire(triggerSaveFailed); fireErr != nil {
			return nil, fireErr
		}

		return nil, err
	}

	if err := b.machine.Fire(triggerSaveSucceeded); err != nil {
		return nil, err
	}

	return saved, nil
}
