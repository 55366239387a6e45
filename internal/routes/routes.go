package routes

import (
	"sentosa_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all HTTP routes. Paths stay identical to the
// legacy API so the existing frontend keeps working unchanged.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	appHandlers.AuthHandler.RegisterRoutes(ginRouter)
	appHandlers.NewsHandler.RegisterRoutes(ginRouter)
	appHandlers.JobHandler.RegisterRoutes(ginRouter)
	appHandlers.FileHandler.RegisterRoutes(ginRouter)
}
