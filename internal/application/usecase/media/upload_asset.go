package media

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/lucasmonteiro/vitrine/internal/application/service"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

// AssetKind routes uploads to per-purpose storage folders.
type AssetKind string

const (
	AssetProfilePhoto AssetKind = "profile_photo"
	AssetProjectImage AssetKind = "project_image"
	AssetCertificate  AssetKind = "certificate"
)

var folderByKind = map[AssetKind]string{
	AssetProfilePhoto: "vitrine/photos",
	AssetProjectImage: "vitrine/projects",
	AssetCertificate:  "vitrine/certificates",
}

type UploadAssetUseCase struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewUploadAssetUseCase(u service.Uploader, log logger.Logger) *UploadAssetUseCase {
	return &UploadAssetUseCase{uploader: u, logger: log}
}

type UploadAssetInput struct {
	OwnerID uuid.UUID
	Kind    AssetKind
	File    io.Reader
}

// Execute stores the asset and returns its public URL. The public ID is
// deterministic per owner and kind so re-uploads replace the old asset
// instead of piling up versions.
func (uc *UploadAssetUseCase) Execute(ctx context.Context, in UploadAssetInput) (string, error) {
	folder, ok := folderByKind[in.Kind]
	if !ok {
		return "", apperror.NewInvalidInput(fmt.Sprintf("unknown asset kind '%s'", in.Kind), nil)
	}
	if in.File == nil {
		return "", apperror.NewInvalidInput("file is required", nil)
	}

	publicID := fmt.Sprintf("%s_%s", in.Kind, in.OwnerID.String())
	url, err := uc.uploader.Upload(ctx, in.File, folder, publicID)
	if err != nil {
		return "", apperror.NewInternal("asset upload failed", err)
	}
	return url, nil
}
