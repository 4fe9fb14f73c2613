package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	subscriptionUC "github.com/lucasmonteiro/vitrine/internal/application/usecase/subscription"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type BillingHandler struct {
	subscriptionUseCase *subscriptionUC.SubscriptionUseCase
	logger              logger.Logger
}

func NewBillingHandler(uc *subscriptionUC.SubscriptionUseCase, log logger.Logger) *BillingHandler {
	return &BillingHandler{subscriptionUseCase: uc, logger: log}
}

func (h *BillingHandler) GetSubscription(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	status, err := h.subscriptionUseCase.GetStatus(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// CreatePreference serves POST /api/mercadopago/create-preference and
// returns the hosted checkout URL.
func (h *BillingHandler) CreatePreference(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	var req CreatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	initPoint, err := h.subscriptionUseCase.CreateCheckout(c.Request.Context(), ownerID, req.PlanID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, CreatePreferenceResponse{InitPoint: initPoint})
}
