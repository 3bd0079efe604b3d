package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	catalogDomain "github.com/ferremax/portal/catalog/domain"
	"github.com/ferremax/portal/common"
)

func testProduct(id string, price common.Cents) *catalogDomain.Product {
	return &catalogDomain.Product{
		ID:        id,
		Name:      "Taladro Percutor 650W",
		Unit:      "un",
		BasePrice: price,
	}
}

func TestAddLineItemSeedsDefaults(t *testing.T) {
	q := NewQuotation(ClientContact{Name: "Acme"}, Vendor{UID: "v1"})

	item := q.AddLineItem(testProduct("p1", 10000))

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "p1", item.ProductID)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, common.Cents(10000), item.UnitPrice)
	assert.Zero(t, item.Discount)
	assert.Equal(t, common.Cents(10000), item.Subtotal)
	assert.Equal(t, common.Cents(10000), q.Totals.Total)
}

func TestUpdateLineItemCoercions(t *testing.T) {
	tests := []struct {
		name  string
		field LineItemField
		value float64
		check func(t *testing.T, li LineItem)
	}{
		{
			name:  "negative quantity falls back to 1",
			field: FieldQuantity,
			value: -5,
			check: func(t *testing.T, li LineItem) {
				assert.Equal(t, 1, li.Quantity)
			},
		},
		{
			name:  "zero quantity falls back to 1",
			field: FieldQuantity,
			value: 0,
			check: func(t *testing.T, li LineItem) {
				assert.Equal(t, 1, li.Quantity)
			},
		},
		{
			name:  "fractional quantity truncates",
			field: FieldQuantity,
			value: 3.9,
			check: func(t *testing.T, li LineItem) {
				assert.Equal(t, 3, li.Quantity)
			},
		},
		{
			name:  "negative price falls back to 0",
			field: FieldUnitPrice,
			value: -10,
			check: func(t *testing.T, li LineItem) {
				assert.Equal(t, common.Cents(0), li.UnitPrice)
			},
		},
		{
			name:  "price accepts decimals",
			field: FieldUnitPrice,
			value: 99.99,
			check: func(t *testing.T, li LineItem) {
				assert.Equal(t, common.Cents(9999), li.UnitPrice)
			},
		},
		{
			// Line discount is intentionally not clamped to 0-100; the
			// builder UI is trusted to supply a sane percentage.
			name:  "discount stored as supplied",
			field: FieldDiscount,
			value: 150,
			check: func(t *testing.T, li LineItem) {
				assert.Equal(t, float64(150), li.Discount)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuotation(ClientContact{}, Vendor{})
			item := q.AddLineItem(testProduct("p1", 10000))

			q.UpdateLineItem(item.ID, tt.field, tt.value)

			tt.check(t, q.Items[0])
		})
	}
}

func TestUpdateLineItemUnknownIDIsNoop(t *testing.T) {
	q := NewQuotation(ClientContact{}, Vendor{})
	q.AddLineItem(testProduct("p1", 10000))

	before := q.Items[0]
	q.UpdateLineItem("missing", FieldQuantity, 7)

	assert.Equal(t, before, q.Items[0])
}

func TestRemoveLineItemIdempotent(t *testing.T) {
	q := NewQuotation(ClientContact{}, Vendor{})
	item := q.AddLineItem(testProduct("p1", 10000))
	q.AddLineItem(testProduct("p2", 5000))

	q.RemoveLineItem("does-not-exist")
	assert.Len(t, q.Items, 2)
	assert.Equal(t, common.Cents(15000), q.Totals.Total)

	q.RemoveLineItem(item.ID)
	assert.Len(t, q.Items, 1)
	assert.Equal(t, common.Cents(5000), q.Totals.Total)

	q.RemoveLineItem(item.ID)
	assert.Len(t, q.Items, 1)
}

func TestRecomputeDerivations(t *testing.T) {
	// 3 x 100.00 with a 10% document discount and 16% tax.
	q := NewQuotation(ClientContact{Name: "Acme", Email: "a@acme.com"}, Vendor{})
	item := q.AddLineItem(testProduct("p1", 10000))

	q.UpdateLineItem(item.ID, FieldQuantity, 3)
	q.SetDiscount(10)
	q.SetTaxRate(16)

	assert.Equal(t, common.Cents(30000), q.Totals.Subtotal)
	assert.Equal(t, common.Cents(3000), q.Totals.DiscountAmount)
	assert.Equal(t, common.Cents(27000), q.Totals.TaxableAmount)
	assert.Equal(t, common.Cents(4320), q.Totals.TaxAmount)
	assert.Equal(t, common.Cents(31320), q.Totals.Total)
}

func TestRecomputeMatchesClosedForm(t *testing.T) {
	q := NewQuotation(ClientContact{}, Vendor{})

	a := q.AddLineItem(testProduct("p1", 12550))
	b := q.AddLineItem(testProduct("p2", 899))
	c := q.AddLineItem(testProduct("p3", 100000))

	q.UpdateLineItem(a.ID, FieldQuantity, 4)
	q.UpdateLineItem(a.ID, FieldDiscount, 5)
	q.UpdateLineItem(b.ID, FieldQuantity, 12)
	q.UpdateLineItem(c.ID, FieldUnitPrice, 950.25)
	q.RemoveLineItem(b.ID)
	q.SetDiscount(7.5)
	q.SetTaxRate(19)

	var subtotal common.Cents
	for _, li := range q.Items {
		expected := li.UnitPrice.MulQty(li.Quantity).ApplyPercent(100 - li.Discount)
		assert.Equal(t, expected, li.Subtotal)
		subtotal += expected
	}

	discount := subtotal.ApplyPercent(7.5)
	taxable := subtotal - discount
	tax := taxable.ApplyPercent(19)

	assert.Equal(t, subtotal, q.Totals.Subtotal)
	assert.Equal(t, discount, q.Totals.DiscountAmount)
	assert.Equal(t, taxable, q.Totals.TaxableAmount)
	assert.Equal(t, tax, q.Totals.TaxAmount)
	assert.Equal(t, taxable+tax, q.Totals.Total)
}

func TestTotalNeverNegative(t *testing.T) {
	q := NewQuotation(ClientContact{}, Vendor{})
	q.AddLineItem(testProduct("p1", 10000))

	// An unclamped document discount above 100% must not surface a
	// negative grand total.
	q.SetDiscount(250)

	assert.GreaterOrEqual(t, q.Totals.Total, common.Cents(0))
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusDraft.CanTransitionTo(StatusSent))
	assert.True(t, StatusSent.CanTransitionTo(StatusAccepted))
	assert.True(t, StatusSent.CanTransitionTo(StatusExpired))
	assert.False(t, StatusDraft.CanTransitionTo(StatusAccepted))
	assert.False(t, StatusAccepted.CanTransitionTo(StatusDraft))
	assert.False(t, StatusExpired.CanTransitionTo(StatusSent))
}
