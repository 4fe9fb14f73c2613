package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cvUC "github.com/lucasmonteiro/vitrine/internal/application/usecase/cv"
	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type CVHandler struct {
	cvUseCase       *cvUC.CVUseCase
	renderCVUseCase *cvUC.RenderCVUseCase
	logger          logger.Logger
}

func NewCVHandler(uc *cvUC.CVUseCase, renderUC *cvUC.RenderCVUseCase, log logger.Logger) *CVHandler {
	return &CVHandler{cvUseCase: uc, renderCVUseCase: renderUC, logger: log}
}

func (h *CVHandler) bindCVRequest(c *gin.Context) (*CreateOrUpdateCVRequest, []uuid.UUID, []uuid.UUID, []uuid.UUID, bool) {
	var req CreateOrUpdateCVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return nil, nil, nil, nil, false
	}
	projectIDs, err := parseUUIDs(req.ProjectIDs)
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project_ids", err))
		return nil, nil, nil, nil, false
	}
	experienceIDs, err := parseUUIDs(req.ExperienceIDs)
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid experience_ids", err))
		return nil, nil, nil, nil, false
	}
	articleIDs, err := parseUUIDs(req.ArticleIDs)
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid article_ids", err))
		return nil, nil, nil, nil, false
	}
	return &req, projectIDs, experienceIDs, articleIDs, true
}

func (h *CVHandler) CreateCV(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	req, projectIDs, experienceIDs, articleIDs, ok := h.bindCVRequest(c)
	if !ok {
		return
	}

	input := cvUC.CreateCVInput{
		OwnerID:       ownerID,
		Name:          req.Name,
		Language:      i18n.Language(req.Language),
		Template:      req.Template,
		IncludePhoto:  req.IncludePhoto,
		ProjectIDs:    projectIDs,
		ExperienceIDs: experienceIDs,
		ArticleIDs:    articleIDs,
	}

	newCV, err := h.cvUseCase.CreateCV(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToCVDTO(newCV))
}

func (h *CVHandler) UpdateCV(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	cvID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid CV ID", err))
		return
	}
	req, projectIDs, experienceIDs, articleIDs, ok := h.bindCVRequest(c)
	if !ok {
		return
	}

	input := cvUC.UpdateCVInput{
		CVID:          cvID,
		OwnerID:       ownerID,
		Name:          req.Name,
		Language:      i18n.Language(req.Language),
		Template:      req.Template,
		IncludePhoto:  req.IncludePhoto,
		ProjectIDs:    projectIDs,
		ExperienceIDs: experienceIDs,
		ArticleIDs:    articleIDs,
	}

	updated, err := h.cvUseCase.UpdateCV(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToCVDTO(updated))
}

func (h *CVHandler) DeleteCV(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	cvID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid CV ID", err))
		return
	}

	if err := h.cvUseCase.DeleteCV(c.Request.Context(), cvID, ownerID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CVHandler) GetCV(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	cvID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid CV ID", err))
		return
	}

	found, err := h.cvUseCase.GetCV(c.Request.Context(), cvID, ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToCVDTO(found))
}

func (h *CVHandler) ListCVs(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	cvs, err := h.cvUseCase.ListCVs(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]CVDTO, len(cvs))
	for i, item := range cvs {
		dtos[i] = ToCVDTO(item)
	}
	c.JSON(http.StatusOK, dtos)
}

// RenderCV materializes the CV into a print-ready document. The lang
// query overrides the CV's configured language.
func (h *CVHandler) RenderCV(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	cvID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid CV ID", err))
		return
	}

	input := cvUC.RenderCVInput{OwnerID: ownerID, CVID: cvID}
	if raw := c.Query("lang"); raw != "" {
		lang, ok := i18n.Parse(raw)
		if !ok {
			c.Error(apperror.NewInvalidInput("unsupported language", nil))
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
