package handlers

import (
	"io"
	"net/http"

	"ldexchange_backend/internal/logger"
	"ldexchange_backend/internal/payments"
	"ldexchange_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives asynchronous provider callbacks. Signature
// verification is the only gate: once it passes, the response is always
// 200 so the provider's retry loop is never driven by internal errors.
type WebhookHandler struct {
	*BaseHandler
	fulfillmentService services.FulfillmentService
	webhookSecret      string
}

func NewWebhookHandler(base *BaseHandler, fulfillmentService services.FulfillmentService, webhookSecret string) *WebhookHandler {
	return &WebhookHandler{
		BaseHandler:        base,
		fulfillmentService: fulfillmentService,
		webhookSecret:      webhookSecret,
	}
}

func (h *WebhookHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/payments/webhook", h.HandleCallback)
}

func (h *WebhookHandler) HandleCallback(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		logger.CtxWithError(ctx, "failed to read webhook body", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		return
	}

	event, err := payments.ConstructEvent(body, c.GetHeader(payments.SignatureHeader), h.webhookSecret)
	if err != nil {
		logger.CtxWarn(ctx, "webhook signature verification failed", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		return
	}

	h.fulfillmentService.HandleEvent(ctx, event)

	c.JSON(http.StatusOK, gin.H{"received": true})
}
