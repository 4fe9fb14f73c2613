package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	translationUC "github.com/lucasmonteiro/vitrine/internal/application/usecase/translation"
	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type TranslateHandler struct {
	translateTextsUseCase *translationUC.TranslateTextsUseCase
	logger                logger.Logger
}

func NewTranslateHandler(uc *translationUC.TranslateTextsUseCase, log logger.Logger) *TranslateHandler {
	return &TranslateHandler{translateTextsUseCase: uc, logger: log}
}

// Translate serves POST /api/translate for the editor's on-demand
// machine-translation requests.
func (h *TranslateHandler) Translate(c *gin.Context) {
	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	translated, err := h.translateTextsUseCase.Execute(c.Request.Context(), translationUC.TranslateTextsInput{
		Target: i18n.Language(req.Target),
		Texts:  req.Texts,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, TranslateResponse{Translations: translated})
}
