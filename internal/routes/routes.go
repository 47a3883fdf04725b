package routes

import (
	"ldexchange_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes attaches all HTTP routes to the engine.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.CheckoutHandler.RegisterRoutes(api)
		appHandlers.WebhookHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api)
		appHandlers.FreelancerHandler.RegisterRoutes(api)
	}
}
