package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	videoUC "github.com/lucasmonteiro/vitrine/internal/application/usecase/video"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type VideoHandler struct {
	videoUseCase *videoUC.VideoUseCase
	logger       logger.Logger
}

func NewVideoHandler(uc *videoUC.VideoUseCase, log logger.Logger) *VideoHandler {
	return &VideoHandler{videoUseCase: uc, logger: log}
}

func (h *VideoHandler) GetVideo(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	v, err := h.videoUseCase.GetVideo(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToVideoDTO(v))
}

func (h *VideoHandler) SetVideo(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	var req SetVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	v, err := h.videoUseCase.SetVideo(c.Request.Context(), videoUC.SetVideoInput{
		OwnerID: ownerID,
		Title:   req.Title,
		URL:     req.URL,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToVideoDTO(v))
}

func (h *VideoHandler) RemoveVideo(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	if err := h.videoUseCase.RemoveVideo(c.Request.Context(), ownerID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
