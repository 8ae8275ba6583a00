package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/labax/labax-server/config"
	"github.com/labax/labax-server/controllers"
	"github.com/labax/labax-server/repository"
	"github.com/labax/labax-server/service"
)

var startedAt = time.Now()

// RegisterRoutes registers every route of the server.
func RegisterRoutes(router *gin.Engine, cfg *config.Config) {
	store := repository.NewDemoRequestStore()
	notifier := service.NewNotifier(cfg)
	demoCtl := controllers.NewDemoRequestController(store, notifier)

	RegisterDemoRoutes(router, demoCtl, cfg)
	RegisterAuthRoutes(router, cfg)

	// Health check
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":      "OK",
			"timestamp":   time.Now().Format(time.RFC3339),
			"uptime":      time.Since(startedAt).Seconds(),
			"environment": cfg.Env,
		})
	})

	// Static site + SPA catch-all
	RegisterStaticRoutes(router, cfg)
}
