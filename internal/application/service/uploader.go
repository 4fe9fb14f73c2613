package service

import (
	"context"
	"io"
)

// Uploader stores binary assets (photos, project images, certificate
// PDFs) and returns public URLs.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
}
