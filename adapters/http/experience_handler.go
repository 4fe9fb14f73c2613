package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	experienceUC "github.com/lucasmonteiro/vitrine/internal/application/usecase/experience"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type ExperienceHandler struct {
	experienceUseCase *experienceUC.ExperienceUseCase
	logger            logger.Logger
}

func NewExperienceHandler(uc *experienceUC.ExperienceUseCase, log logger.Logger) *ExperienceHandler {
	return &ExperienceHandler{experienceUseCase: uc, logger: log}
}

func (h *ExperienceHandler) CreateExperience(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	var req CreateOrUpdateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := experienceUC.CreateExperienceInput{
		OwnerID:        ownerID,
		Company:        req.Company,
		Title:          req.Title,
		Period:         req.Period,
		Description:    req.Description,
		CertificateURL: req.CertificateURL,
		Translations:   req.Translations.ToDomain(),
	}

	exp, err := h.experienceUseCase.CreateExperience(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToExperienceDTO(exp))
}

func (h *ExperienceHandler) UpdateExperience(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	experienceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid experience ID", err))
		return
	}
	var req CreateOrUpdateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := experienceUC.UpdateExperienceInput{
		ExperienceID:   experienceID,
		OwnerID:        ownerID,
		Company:        req.Company,
		Title:          req.Title,
		Period:         req.Period,
		Description:    req.Description,
		CertificateURL: req.CertificateURL,
		Translations:   req.Translations.ToDomain(),
	}

	exp, err := h.experienceUseCase.UpdateExperience(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToExperienceDTO(exp))
}

func (h *ExperienceHandler) DeleteExperience(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	experienceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid experience ID", err))
		return
	}

	if err := h.experienceUseCase.DeleteExperience(c.Request.Context(), experienceID, ownerID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ExperienceHandler) GetExperience(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	experienceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid experience ID", err))
		return
	}

	exp, err := h.experienceUseCase.GetExperience(c.Request.Context(), experienceID, ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToExperienceDTO(exp))
}

func (h *ExperienceHandler) ListExperiences(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	experiences, err := h.experienceUseCase.ListExperiences(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]ExperienceDTO, len(experiences))
	for i, e := range experiences {
		dtos[i] = ToExperienceDTO(e)
	}
	c.JSON(http.StatusOK, dtos)
}
