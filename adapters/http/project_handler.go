package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	projectUC "github.com/lucasmonteiro/vitrine/internal/application/usecase/project"
	"github.com/lucasmonteiro/vitrine/internal/domain/project"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type ProjectHandler struct {
	createProjectUseCase *projectUC.CreateProjectUseCase
	listProjectsUseCase  *projectUC.ListProjectsUseCase
	getProjectUseCase    *projectUC.GetProjectUseCase
	updateProjectUseCase *projectUC.UpdateProjectUseCase
	deleteProjectUseCase *projectUC.DeleteProjectUseCase
	logger               logger.Logger
}

func NewProjectHandler(
	createUC *projectUC.CreateProjectUseCase,
	listUC *projectUC.ListProjectsUseCase,
	getUC *projectUC.GetProjectUseCase,
	updateUC *projectUC.UpdateProjectUseCase,
	deleteUC *projectUC.DeleteProjectUseCase,
	log logger.Logger,
) *ProjectHandler {
	return &ProjectHandler{
		createProjectUseCase: createUC,
		listProjectsUseCase:  listUC,
		getProjectUseCase:    getUC,
		updateProjectUseCase: updateUC,
		deleteProjectUseCase: deleteUC,
		logger:               log,
	}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := projectUC.CreateProjectInput{
		OwnerID:       ownerID,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Type:          project.Type(req.Type),
		RepositoryURL: req.RepositoryURL,
		VideoURL:      req.VideoURL,
		ImageURL:      req.ImageURL,
		ClientName:    req.ClientName,
		Translations:  req.Translations.ToDomain(),
		IsPublic:      req.IsPublic,
	}

	output, err := h.createProjectUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToProjectDTO(output.Project))
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := projectUC.UpdateProjectInput{
		ProjectID:     projectID,
		OwnerID:       ownerID,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Type:          project.Type(req.Type),
		RepositoryURL: req.RepositoryURL,
		VideoURL:      req.VideoURL,
		ImageURL:      req.ImageURL,
		ClientName:    req.ClientName,
		Translations:  req.Translations.ToDomain(),
		IsPublic:      req.IsPublic,
	}

	output, err := h.updateProjectUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProjectDTO(output.Project))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}

	input := projectUC.DeleteProjectInput{ProjectID: projectID, OwnerID: ownerID}
	if err := h.deleteProjectUseCase.Execute(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}
	input := projectUC.GetProjectInput{ProjectID: projectID, OwnerID: ownerID}
	output, err := h.getProjectUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProjectDTO(output.Project))
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	input := projectUC.ListProjectsInput{OwnerID: ownerID, Page: page, Limit: limit}
	output, err := h.listProjectsUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]ProjectSummaryDTO, len(output.Projects))
	for i, p := range output.Projects {
		dtos[i] = ToProjectSummaryDTO(p)
	}
	c.JSON(http.StatusOK, dtos)
}
