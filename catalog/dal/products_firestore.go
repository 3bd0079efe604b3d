package dal

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"

	"github.com/ferremax/portal/docstore"
	docsIface "github.com/ferremax/portal/docstore/iface"
	"github.com/ferremax/portal/framework/connection"

	"github.com/ferremax/portal/catalog/domain"
)

const productsCollection = "products"

var ErrInvalidProductID = errors.New("invalid product id")

// ProductsFirestore is used to interact with catalog products stored on
// Firestore.
type ProductsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	documentsHandler   docsIface.DocumentsHandler
}

// NewProductsFirestore returns a new ProductsFirestore instance with given
// project id.
func NewProductsFirestore(ctx context.Context, projectID string) (*ProductsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewProductsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewProductsFirestoreWithClient returns a new ProductsFirestore using given
// client.
func NewProductsFirestoreWithClient(fun connection.FirestoreFromContextFun) *ProductsFirestore {
	return &ProductsFirestore{
		firestoreClientFun: fun,
		documentsHandler:   docstore.DocumentHandler{},
	}
}

func (d *ProductsFirestore) GetRef(ctx context.Context, ID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(productsCollection).Doc(ID)
}

// GetProduct returns a single catalog product.
func (d *ProductsFirestore) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	if productID == "" {
		return nil, ErrInvalidProductID
	}

	snap, err := d.documentsHandler.Get(ctx, d.GetRef(ctx, productID))
	if err != nil {
		return nil, err
	}

	var product domain.Product

	if err := snap.DataTo(&product); err != nil {
		return nil, err
	}

	product.ID = snap.ID()

	return &product, nil
}

// ListProducts returns the full sellable catalog ordered by name.
func (d *ProductsFirestore) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	query := d.firestoreClientFun(ctx).
		Collection(productsCollection).
		OrderBy("name", firestore.Asc)

	snaps, err := d.documentsHandler.GetAll(ctx, query)
	if err != nil {
		return nil, err
	}

	var products []*domain.Product

	for _, snap := range snaps {
		var product domain.Product

		if err := snap.DataTo(&product); err != nil {
			return nil, err
		}

		product.ID = snap.ID()

		products = append(products, &product)
	}

	return products, nil
}
