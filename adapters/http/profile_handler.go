package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/lucasmonteiro/vitrine/internal/application/usecase/profile"
	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{profileUseCase: uc, logger: log}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context(), profileUC.GetProfileInput{OwnerID: ownerID})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := profileUC.UpdateProfileInput{
		OwnerID:           ownerID,
		FullName:          req.FullName,
		Title:             req.Title,
		Bio:               req.Bio,
		Email:             req.Email,
		Phone:             req.Phone,
		Location:          req.Location,
		PhotoURL:          req.PhotoURL,
		Skills:            req.Skills,
		Education:         req.ToDomainEducation(),
		SocialLinks:       req.ToDomainSocialLinks(),
		PreferredLanguage: i18n.Language(req.PreferredLanguage),
		Translations:      req.Translations.ToDomain(),
	}

	output, err := h.profileUseCase.ExecuteUpdateProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}
