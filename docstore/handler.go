// Package docstore wraps the Firestore client SDK behind a small documents
// handler interface so the DALs can be unit tested against mocks.
package docstore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ferremax/portal/docstore/iface"
)

// DocumentHandler is the concrete firestore-backed implementation of
// iface.DocumentsHandler.
type DocumentHandler struct{}

type documentSnapshot struct {
	snap *firestore.DocumentSnapshot
}

func (d documentSnapshot) DataTo(v interface{}) error {
	return d.snap.DataTo(v)
}

func (d documentSnapshot) ID() string {
	return d.snap.Ref.ID
}

func (d documentSnapshot) Exists() bool {
	return d.snap.Exists()
}

func (h DocumentHandler) Get(ctx context.Context, docRef *firestore.DocumentRef) (iface.DocumentSnapshot, error) {
	snap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return documentSnapshot{snap}, nil
}

func (h DocumentHandler) GetAll(ctx context.Context, query firestore.Query) ([]iface.DocumentSnapshot, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var snaps []iface.DocumentSnapshot

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		snaps = append(snaps, documentSnapshot{snap})
	}

	return snaps, nil
}

func (h DocumentHandler) Create(ctx context.Context, docRef *firestore.DocumentRef, data interface{}) (*firestore.WriteResult, error) {
	return docRef.Create(ctx, data)
}

func (h DocumentHandler) Set(ctx context.Context, docRef *firestore.DocumentRef, data interface{}) (*firestore.WriteResult, error) {
	return docRef.Set(ctx, data)
}

func (h DocumentHandler) Update(ctx context.Context, docRef *firestore.DocumentRef, updates []firestore.Update) (*firestore.WriteResult, error) {
	res, err := docRef.Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return res, nil
}

func (h DocumentHandler) Delete(ctx context.Context, docRef *firestore.DocumentRef) (*firestore.WriteResult, error) {
	return docRef.Delete(ctx)
}
