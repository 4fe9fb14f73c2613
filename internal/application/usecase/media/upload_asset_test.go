package media

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type noopLogger struct{}

func (noopLogger) Debug(string, ...zap.Field)        {}
func (noopLogger) Info(string, ...zap.Field)         {}
func (noopLogger) Warn(string, ...zap.Field)         {}
func (noopLogger) Error(string, error, ...zap.Field) {}
func (noopLogger) Fatal(string, error, ...zap.Field) {}
func (l noopLogger) With(...zap.Field) logger.Logger { return l }

type stubUploader struct {
	url      string
	err      error
	folder   string
	publicID string
}

func (s *stubUploader) Upload(_ context.Context, _ io.Reader, folder, publicID string) (string, error) {
	s.folder = folder
	s.publicID = publicID
	return s.url, s.err
}

func (s *stubUploader) Delete(context.Context, string) error { return nil }

func TestUploadAsset_RoutesByKind(t *testing.T) {
	ownerID := uuid.New()
	uploader := &stubUploader{url: "https://cdn.example/photo.jpg"}
	uc := NewUploadAssetUseCase(uploader, noopLogger{})

	url, err := uc.Execute(context.Background(), UploadAssetInput{
		OwnerID: ownerID,
		Kind:    AssetProfilePhoto,
		File:    strings.NewReader("fake-bytes"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example/photo.jpg", url)
	assert.Equal(t, "vitrine/photos", uploader.folder)
	// Deterministic public id so a new photo replaces the old one.
	assert.Equal(t, "profile_photo_"+ownerID.String(), uploader.publicID)
}

func TestUploadAsset_UnknownKind(t *testing.T) {
	uc := NewUploadAssetUseCase(&stubUploader{}, noopLogger{})

	_, err := uc.Execute(context.Background(), UploadAssetInput{
		OwnerID: uuid.New(),
		Kind:    AssetKind("banner"),
		File:    strings.NewReader("x"),
	})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestUploadAsset_MissingFile(t *testing.T) {
	uc := NewUploadAssetUseCase(&stubUploader{}, noopLogger{})

	_, err := uc.Execute(context.Background(), UploadAssetInput{
		OwnerID: uuid.New(),
		Kind:    AssetCertificate,
	})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestUploadAsset_UploaderFailure(t *testing.T) {
	uc := NewUploadAssetUseCase(&stubUploader{err: errors.New("cloud down")}, noopLogger{})

	_, err := uc.Execute(context.Background(), UploadAssetInput{
		OwnerID: uuid.New(),
		Kind:    AssetProjectImage,
		File:    strings.NewReader("x"),
	})

	assert.ErrorIs(t, err, apperror.ErrInternal)
}
