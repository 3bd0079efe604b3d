package domain

import (
	"github.com/ferremax/portal/common"
)

// Product is a sellable catalog entry the quotation builder picks from.
type Product struct {
	ID          string       `firestore:"-" json:"id"`
	Name        string       `firestore:"name" json:"name"`
	Description string       `firestore:"description" json:"description"`
	Brand       string       `firestore:"brand" json:"brand"`
	Category    string       `firestore:"category" json:"category"`
	Unit        string       `firestore:"unit" json:"unit"`
	BasePrice   common.Cents `firestore:"basePriceCents" json:"basePriceCents"`
	Stock       int          `firestore:"stock" json:"stock"`
}
