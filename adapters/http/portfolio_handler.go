package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cvUC "github.com/lucasmonteiro/vitrine/internal/application/usecase/cv"
	portfolioUC "github.com/lucasmonteiro/vitrine/internal/application/usecase/portfolio"
	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type PortfolioHandler struct {
	renderPortfolioUseCase *portfolioUC.RenderPortfolioUseCase
	renderCVUseCase        *cvUC.RenderCVUseCase
	logger                 logger.Logger
}

func NewPortfolioHandler(uc *portfolioUC.RenderPortfolioUseCase, renderCV *cvUC.RenderCVUseCase, log logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{renderPortfolioUseCase: uc, renderCVUseCase: renderCV, logger: log}
}

// GetPortfolio serves GET /p/:userId. Optional query params: cvLang
// forces the language, cvId restricts content to a CV's selections.
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid user ID", err))
		return
	}

	input := portfolioUC.RenderPortfolioInput{UserID: userID}

	if raw := c.Query("cvLang"); raw != "" {
		lang, ok := i18n.Parse(raw)
		if !ok {
			c.Error(apperror.NewInvalidInput("unsupported cvLang", nil))
			return
		}
		input.Language = lang
	}
	if raw := c.Query("cvId"); raw != "" {
		cvID, err := uuid.Parse(raw)
		if err != nil {
			c.Error(apperror.NewInvalidInput("invalid cvId", err))
			return
		}
		input.CVID = &cvID
	}

	view, err := h.renderPortfolioUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetCVDocument serves GET /p/:userId/cv?cvId=. The document is public:
// anyone with the link can fetch the print-ready JSON. cvLang overrides
// the CV's stored language.
func (h *PortfolioHandler) GetCVDocument(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid user ID", err))
		return
	}
	cvID, err := uuid.Parse(c.Query("cvId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("cvId is required", err))
		return
	}

	input := cvUC.RenderCVInput{OwnerID: userID, CVID: cvID}
	if raw := c.Query("cvLang"); raw != "" {
		lang, ok := i18n.Parse(raw)
		if !ok {
			c.Error(apperror.NewInvalidInput("unsupported cvLang", nil))
			return
		}
		input.Language = lang
	}

	doc, err := h.renderCVUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, doc)
}
