package connection

import (
	"context"
	"errors"

	"cloud.google.com/go/storage"

	"github.com/ferremax/portal/logger"
)

var ErrCloudStorageInitialization = errors.New("cloud storage initialization error")

type CloudStorageClient struct {
	cs *storage.Client
}

func NewCloudStorage(ctx context.Context, log *logger.Logging) (*CloudStorageClient, error) {
	l := log.Logger(ctx)

	cs, err := storage.NewClient(ctx)
	if err != nil {
		l.Errorf("%s: %s", ErrCloudStorageInitialization, err)
		return nil, ErrCloudStorageInitialization
	}

	return &CloudStorageClient{
		cs,
	}, nil
}
