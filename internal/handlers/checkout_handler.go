package handlers

import (
	"net/http"

	"ldexchange_backend/internal/services"
	"ldexchange_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler exposes checkout session creation.
type CheckoutHandler struct {
	*BaseHandler
	checkoutService services.CheckoutService
}

func NewCheckoutHandler(base *BaseHandler, checkoutService services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		BaseHandler:     base,
		checkoutService: checkoutService,
	}
}

func (h *CheckoutHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/payments/checkout", h.CreateCheckout)
}

// CreateCheckout validates the purchase request and returns the provider
// redirect URL.
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var req dto.CreateCheckoutRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.checkoutService.CreateCheckout(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
