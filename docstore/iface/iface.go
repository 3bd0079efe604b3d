package iface

import (
	"context"

	"cloud.google.com/go/firestore"
)

// DocumentSnapshot narrows *firestore.DocumentSnapshot to what the DALs
// consume, so unit tests can stub reads without a live client.
//
//go:generate mockery --name DocumentSnapshot --output ../mocks --outpkg mocks
type DocumentSnapshot interface {
	DataTo(v interface{}) error
	ID() string
	Exists() bool
}

// DocumentsHandler wraps the firestore document operations used by the DALs.
//
//go:generate mockery --name DocumentsHandler --output ../mocks --outpkg mocks
type DocumentsHandler interface {
	Get(ctx context.Context, docRef *firestore.DocumentRef) (DocumentSnapshot, error)
	GetAll(ctx context.Context, query firestore.Query) ([]DocumentSnapshot, error)
	Create(ctx context.Context, docRef *firestore.DocumentRef, data interface{}) (*firestore.WriteResult, error)
	Set(ctx context.Context, docRef *firestore.DocumentRef, data interface{}) (*firestore.WriteResult, error)
	Update(ctx context.Context, docRef *firestore.DocumentRef, updates []firestore.Update) (*firestore.WriteResult, error)
	Delete(ctx context.Context, docRef *firestore.DocumentRef) (*firestore.WriteResult, error)
}
