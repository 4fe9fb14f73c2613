package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mediaUC "github.com/lucasmonteiro/vitrine/internal/application/usecase/media"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

const maxUploadSize = 10 << 20 // 10 MiB

type MediaHandler struct {
	uploadAssetUseCase *mediaUC.UploadAssetUseCase
	logger             logger.Logger
}

func NewMediaHandler(uc *mediaUC.UploadAssetUseCase, log logger.Logger) *MediaHandler {
	return &MediaHandler{uploadAssetUseCase: uc, logger: log}
}

// UploadAsset accepts a multipart form with a "file" part and a "kind"
// field (profile_photo, project_image, certificate).
func (h *MediaHandler) UploadAsset(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("file part is required", err))
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.Error(apperror.NewInvalidInput("file exceeds the 10MB limit", nil))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open uploaded file", err))
		return
	}
	defer file.Close()

	url, err := h.uploadAssetUseCase.Execute(c.Request.Context(), mediaUC.UploadAssetInput{
		OwnerID: ownerID,
		Kind:    mediaUC.AssetKind(c.PostForm("kind")),
		File:    file,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
