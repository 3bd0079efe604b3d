package dal

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"

	"github.com/ferremax/portal/docstore"
	docsIface "github.com/ferremax/portal/docstore/iface"
	"github.com/ferremax/portal/framework/connection"

	"github.com/ferremax/portal/jobapplication/domain"
)

const applicationsCollection = "jobApplications"

var ErrInvalidApplicationID = errors.New("invalid application id")

// ApplicationsFirestore is used to interact with job applications stored on
// Firestore.
type ApplicationsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	documentsHandler   docsIface.DocumentsHandler
}

// NewApplicationsFirestore returns a new ApplicationsFirestore instance with
// given project id.
func NewApplicationsFirestore(ctx context.Context, projectID string) (*ApplicationsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewApplicationsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewApplicationsFirestoreWithClient returns a new ApplicationsFirestore
// using given client.
func NewApplicationsFirestoreWithClient(fun connection.FirestoreFromContextFun) *ApplicationsFirestore {
	return &ApplicationsFirestore{
		firestoreClientFun: fun,
		documentsHandler:   docstore.DocumentHandler{},
	}
}

func (d *ApplicationsFirestore) GetRef(ctx context.Context, ID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(applicationsCollection).Doc(ID)
}

// CreateApplication persists a submitted application snapshot.
func (d *ApplicationsFirestore) CreateApplication(ctx context.Context, application *domain.JobApplication) (*domain.JobApplication, error) {
	ref := d.firestoreClientFun(ctx).Collection(applicationsCollection).NewDoc()

	if _, err := d.documentsHandler.Create(ctx, ref, application); err != nil {
		return nil, err
	}

	application.ID = ref.ID

	return application, nil
}

// GetApplication returns a single application.
func (d *ApplicationsFirestore) GetApplication(ctx context.Context, applicationID string) (*domain.JobApplication, error) {
	if applicationID == "" {
		return nil, ErrInvalidApplicationID
	}

	snap, err := d.documentsHandler.Get(ctx, d.GetRef(ctx, applicationID))
	if err != nil {
		return nil, err
	}

	var application domain.JobApplication

	if err := snap.DataTo(&application); err != nil {
		return nil, err
	}

	application.ID = snap.ID()

	return &application, nil
}

// ListApplications returns all applications, newest first, for the HR view.
func (d *ApplicationsFirestore) ListApplications(ctx context.Context) ([]*domain.JobApplication, error) {
	query := d.firestoreClientFun(ctx).
		Collection(applicationsCollection).
		OrderBy("createdAt", firestore.Desc)

	snaps, err := d.documentsHandler.GetAll(ctx, query)
	if err != nil {
		return nil, err
	}

	var applications []*domain.JobApplication

	for _, snap := range snaps {
		var application domain.JobApplication

		if err := snap.DataTo(&application); err != nil {
			return nil, err
		}

		application.ID = snap.ID()

		applications = append(applications, &application)
	}

	return applications, nil
}

// AppendAttachments adds uploaded documents to an existing application.
func (d *ApplicationsFirestore) AppendAttachments(ctx context.Context, applicationID string, attachments []domain.Attachment) error {
	if applicationID == "" {
		return ErrInvalidApplicationID
	}

	elems := make([]interface{}, len(attachments))
	for i, a := range attachments {
		elems[i] = a
	}

	_, err := d.documentsHandler.Update(ctx, d.GetRef(ctx, applicationID), []firestore.Update{
		{Path: "form.attachments", Value: firestore.ArrayUnion(elems...)},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})

	return err
}

// UpdateApplicationStatus updates the review status of an application.
func (d *ApplicationsFirestore) UpdateApplicationStatus(ctx context.Context, applicationID string, status domain.Status) error {
	if applicationID == "" {
		return ErrInvalidApplicationID
	}

	_, err := d.documentsHandler.Update(ctx, d.GetRef(ctx, applicationID), []firestore.Update{
		{Path: "status", Value: status},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})

	return err
}
