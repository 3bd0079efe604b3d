package domain

import (
	"time"

	"github.com/google/uuid"

	catalogDomain "github.com/ferremax/portal/catalog/domain"
	"github.com/ferremax/portal/common"
)

type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

// validTransitions captures the quotation lifecycle. Draft quotes can only be
// sent; sent quotes are resolved by the client or expire.
var validTransitions = map[Status][]Status{
	StatusDraft: {StatusSent},
	StatusSent:  {StatusAccepted, StatusRejected, StatusExpired},
}

// CanTransitionTo reports whether moving from s to target is a legal
// lifecycle step.
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}

	return false
}

// LineItemField enumerates the editable fields of a line item.
type LineItemField string

const (
	FieldQuantity  LineItemField = "quantity"
	FieldUnitPrice LineItemField = "unitPrice"
	FieldDiscount  LineItemField = "discount"
)

// LineItem is one priced product row within a quotation. Subtotal is derived
// and recomputed on every mutation; it is persisted only as part of the
// quotation snapshot.
type LineItem struct {
	ID          string       `firestore:"id" json:"id"`
	ProductID   string       `firestore:"productId" json:"productId"`
	Name        string       `firestore:"name" json:"name"`
	Description string       `firestore:"description" json:"description"`
	Unit        string       `firestore:"unit" json:"unit"`
	Quantity    int          `firestore:"quantity" json:"quantity"`
	UnitPrice   common.Cents `firestore:"unitPriceCents" json:"unitPriceCents"`
	Discount    float64      `firestore:"discountPct" json:"discountPct"`
	Subtotal    common.Cents `firestore:"subtotalCents" json:"subtotalCents"`
}

func (li *LineItem) recompute() {
	li.Subtotal = li.UnitPrice.MulQty(li.Quantity).ApplyPercent(100 - li.Discount)
}

// ClientContact is the client snapshot embedded in the quotation. It is
// copied, not referenced, so later client edits don't rewrite sent quotes.
type ClientContact struct {
	Name    string `firestore:"name" json:"name"`
	Email   string `firestore:"email" json:"email"`
	Phone   string `firestore:"phone" json:"phone"`
	Company string `firestore:"company" json:"company"`
}

// Vendor is the issuing vendor snapshot.
type Vendor struct {
	UID   string `firestore:"uid" json:"uid"`
	Name  string `firestore:"name" json:"name"`
	Email string `firestore:"email" json:"email"`
}

// Totals holds the derived amounts. Never stored independently of the items
// they were computed from; always recomputed before persisting.
type Totals struct {
	Subtotal       common.Cents `firestore:"subtotalCents" json:"subtotalCents"`
	DiscountAmount common.Cents `firestore:"discountAmountCents" json:"discountAmountCents"`
	TaxableAmount  common.Cents `firestore:"taxableAmountCents" json:"taxableAmountCents"`
	TaxAmount      common.Cents `firestore:"taxAmountCents" json:"taxAmountCents"`
	Total          common.Cents `firestore:"totalCents" json:"totalCents"`
}

// Quotation is the aggregate owning its line items and derived totals.
type Quotation struct {
	ID         string        `firestore:"-" json:"id"`
	Number     string        `firestore:"number" json:"number"`
	Client     ClientContact `firestore:"client" json:"client"`
	Vendor     Vendor        `firestore:"vendor" json:"vendor"`
	Items      []LineItem    `firestore:"items" json:"items"`
	Discount   float64       `firestore:"discountPct" json:"discountPct"`
	TaxRate    float64       `firestore:"taxRatePct" json:"taxRatePct"`
	ValidUntil time.Time     `firestore:"validUntil" json:"validUntil"`
	Notes      string        `firestore:"notes" json:"notes"`
	Terms      string        `firestore:"terms" json:"terms"`
	Status     Status        `firestore:"status" json:"status"`
	Totals     Totals        `firestore:"totals" json:"totals"`
	CreatedAt  time.Time     `firestore:"createdAt,serverTimestamp" json:"createdAt"`
	UpdatedAt  time.Time     `firestore:"updatedAt,serverTimestamp" json:"updatedAt"`
}

// NewQuotation instantiates a draft aggregate seeded with the client and
// vendor snapshots.
func NewQuotation(client ClientContact, vendor Vendor) *Quotation {
	q := &Quotation{
		Client: client,
		Vendor: vendor,
		Status: StatusDraft,
	}
	q.Recompute()

	return q
}

// AddLineItem appends a new line seeded from the catalog product with
// quantity 1 and no line discount, then recomputes totals.
func (q *Quotation) AddLineItem(product *catalogDomain.Product) *LineItem {
	item := LineItem{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		Name:        product.Name,
		Description: product.Description,
		Unit:        product.Unit,
		Quantity:    1,
		UnitPrice:   product.BasePrice,
	}
	item.recompute()

	q.Items = append(q.Items, item)
	q.Recompute()

	return &q.Items[len(q.Items)-1]
}

// UpdateLineItem edits a single field of the identified line. Malformed
// numeric input silently falls back to a safe default (quantity 1, price 0)
// rather than erroring; the discount percentage is stored as supplied.
// Unknown ids are ignored. Totals are recomputed before returning.
func (q *Quotation) UpdateLineItem(id string, field LineItemField, value float64) {
	for i := range q.Items {
		if q.Items[i].ID != id {
			continue
		}

		switch field {
		case FieldQuantity:
			qty := int(value)
			if qty < 1 {
				qty = 1
			}

			q.Items[i].Quantity = qty
		case FieldUnitPrice:
			price := common.CentsFromFloat(value)
			if price < 0 {
				price = 0
			}

			q.Items[i].UnitPrice = price
		case FieldDiscount:
			q.Items[i].Discount = value
		}

		q.Items[i].recompute()

		break
	}

	q.Recompute()
}

// RemoveLineItem deletes the identified line. Removing a line that does not
// exist is a no-op.
func (q *Quotation) RemoveLineItem(id string) {
	for i := range q.Items {
		if q.Items[i].ID == id {
			q.Items = append(q.Items[:i], q.Items[i+1:]...)
			break
		}
	}

	q.Recompute()
}

// SetDiscount replaces the document-level discount percentage.
func (q *Quotation) SetDiscount(pct float64) {
	q.Discount = pct
	q.Recompute()
}

// SetTaxRate replaces the tax rate percentage.
func (q *Quotation) SetTaxRate(pct float64) {
	q.TaxRate = pct
	q.Recompute()
}

// Recompute derives the totals from the current line items, document
// discount and tax rate. Called at the end of every mutating operation so a
// stale total can never be observed. The grand total is floored at zero.
func (q *Quotation) Recompute() {
	var t Totals

	for i := range q.Items {
		t.Subtotal += q.Items[i].Subtotal
	}

	t.DiscountAmount = t.Subtotal.ApplyPercent(q.Discount)
	t.TaxableAmount = t.Subtotal - t.DiscountAmount
	t.TaxAmount = t.TaxableAmount.ApplyPercent(q.TaxRate)
	t.Total = t.TaxableAmount + t.TaxAmount

	if t.Total < 0 {
		t.Total = 0
	}

	q.Totals = t
}
