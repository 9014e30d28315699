package routes

import (
	"scooply/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterOpsRoutes registers the operator endpoints.
func RegisterOpsRoutes(r *gin.Engine, h *handlers.OpsHandler) {
	r.GET("/healthz", h.HealthHandler)

	ops := r.Group("/ops")
	{
		ops.POST("/routes/generate", h.GenerateRoutesHandler)
		ops.POST("/billing/run", h.RunBillingHandler)
		ops.POST("/reminders/send", h.SendRemindersHandler)
	}
}
