package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	themeUC "github.com/lucasmonteiro/vitrine/internal/application/usecase/theme"
	"github.com/lucasmonteiro/vitrine/internal/domain/theme"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type ThemeHandler struct {
	themeUseCase *themeUC.ThemeUseCase
	logger       logger.Logger
}

func NewThemeHandler(uc *themeUC.ThemeUseCase, log logger.Logger) *ThemeHandler {
	return &ThemeHandler{themeUseCase: uc, logger: log}
}

func (h *ThemeHandler) GetTheme(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	t, err := h.themeUseCase.GetTheme(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToThemeDTO(t))
}

func (h *ThemeHandler) UpdateTheme(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	var req UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := themeUC.UpdateThemeInput{
		OwnerID: ownerID,
		Layout:  theme.LayoutID(req.Layout),
		Mode:    theme.Mode(req.Mode),
		Font:    req.Font,
		Palette: req.Palette.ToDomain(),
	}

	t, err := h.themeUseCase.UpdateTheme(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToThemeDTO(t))
}

// PreviewTheme derives a style bundle from the posted settings without
// saving them.
func (h *ThemeHandler) PreviewTheme(c *gin.Context) {
	var req UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	styles := h.themeUseCase.PreviewStyles(theme.LayoutID(req.Layout), req.Palette.ToDomain(), theme.Mode(req.Mode))
	c.JSON(http.StatusOK, styles)
}
