package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	articleUC "github.com/lucasmonteiro/vitrine/internal/application/usecase/article"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type ArticleHandler struct {
	articleUseCase *articleUC.ArticleUseCase
	logger         logger.Logger
}

func NewArticleHandler(uc *articleUC.ArticleUseCase, log logger.Logger) *ArticleHandler {
	return &ArticleHandler{articleUseCase: uc, logger: log}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	var req CreateOrUpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := articleUC.CreateArticleInput{
		OwnerID:         ownerID,
		Title:           req.Title,
		Journal:         req.Journal,
		Year:            req.Year,
		DOI:             req.DOI,
		URL:             req.URL,
		Abstract:        req.Abstract,
		Translations:    req.Translations.ToDomain(),
		ShowInPortfolio: req.ShowInPortfolio,
		ShowInCV:        req.ShowInCV,
	}

	art, err := h.articleUseCase.CreateArticle(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToArticleDTO(art))
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid article ID", err))
		return
	}
	var req CreateOrUpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := articleUC.UpdateArticleInput{
		ArticleID:       articleID,
		OwnerID:         ownerID,
		Title:           req.Title,
		Journal:         req.Journal,
		Year:            req.Year,
		DOI:             req.DOI,
		URL:             req.URL,
		Abstract:        req.Abstract,
		Translations:    req.Translations.ToDomain(),
		ShowInPortfolio: req.ShowInPortfolio,
		ShowInCV:        req.ShowInCV,
	}

	art, err := h.articleUseCase.UpdateArticle(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToArticleDTO(art))
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid article ID", err))
		return
	}

	if err := h.articleUseCase.DeleteArticle(c.Request.Context(), articleID, ownerID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid article ID", err))
		return
	}

	art, err := h.articleUseCase.GetArticle(c.Request.Context(), articleID, ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToArticleDTO(art))
}

func (h *ArticleHandler) ListArticles(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	articles, err := h.articleUseCase.ListArticles(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]ArticleDTO, len(articles))
	for i, a := range articles {
		dtos[i] = ToArticleDTO(a)
	}
	c.JSON(http.StatusOK, dtos)
}
