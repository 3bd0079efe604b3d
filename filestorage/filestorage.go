package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/ferremax/portal/common"
	"github.com/ferremax/portal/framework/connection"
	"github.com/ferremax/portal/logger"
)

const gcsBaseURL = "https://storage.googleapis.com"

var (
	ErrTooManyFiles = errors.New("too many attachments")
	ErrFileTooLarge = errors.New("attachment exceeds the maximum file size")
)

// Config is the caller-supplied upload policy. It is enforced by the
// handlers receiving the files, not by the upload service itself.
type Config struct {
	MaxFiles    int
	MaxFileSize int64
}

// Check validates one more file of the given size against the policy, with
// count files already accepted.
func (c Config) Check(count int, size int64) error {
	if c.MaxFiles > 0 && count >= c.MaxFiles {
		return ErrTooManyFiles
	}

	if c.MaxFileSize > 0 && size > c.MaxFileSize {
		return ErrFileTooLarge
	}

	return nil
}

type UploadRequest struct {
	Filename    string
	ContentType string
	Description string
	Tags        []string
	Category    string
	Data        io.Reader
}

// UploadedFile points at the stored object through its stable public URL.
type UploadedFile struct {
	URL         string
	Filename    string
	ContentType string
	Size        int64
}

//go:generate mockery --name Service --output ./mocks
type Service interface {
	Upload(ctx context.Context, req *UploadRequest) (*UploadedFile, error)
}

type service struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	bucketName     string
}

func NewService(loggerProvider logger.Provider, conn *connection.Connection) Service {
	return &service{
		loggerProvider: loggerProvider,
		conn:           conn,
		bucketName:     common.ProjectID + "-uploads",
	}
}

// Upload streams the file into the uploads bucket and returns its public
// URL. Object names are prefixed with a random id so uploads never collide.
func (s *service) Upload(ctx context.Context, req *UploadRequest) (*UploadedFile, error) {
	l := s.loggerProvider(ctx)

	objectName := fmt.Sprintf("%s/%s-%s", req.Category, uuid.New().String(), req.Filename)

	w := s.conn.CloudStorage(ctx).Bucket(s.bucketName).Object(objectName).NewWriter(ctx)
	w.ContentType = req.ContentType
	w.Metadata = map[string]string{
		"description": req.Description,
		"tags":        strings.Join(req.Tags, ","),
	}

	size, err := io.Copy(w, req.Data)
	if err != nil {
		w.Close()
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	l.Infof("uploaded %s (%d bytes)", objectName, size)

	return &UploadedFile{
		URL:         fmt.Sprintf("%s/%s/%s", gcsBaseURL, s.bucketName, objectName),
		Filename:    req.Filename,
		ContentType: req.ContentType,
		Size:        size,
	}, nil
}
