package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/labax/labax-server/config"
	"github.com/labax/labax-server/controllers"
	"github.com/labax/labax-server/middleware"
)

// RegisterDemoRoutes registers the demo-request endpoints. Submission is
// public; the admin endpoints sit behind the (optional) admin guard.
func RegisterDemoRoutes(router *gin.Engine, ctl *controllers.DemoRequestController, cfg *config.Config) {
	demoGroup := router.Group("/api/demo")

	// Submit a demo request
	demoGroup.POST("/request", ctl.Submit)

	adminGroup := demoGroup.Group("")
	adminGroup.Use(middleware.AdminAuth(cfg))

	// List demo requests, newest first
	adminGroup.GET("/requests", ctl.List)

	// Fetch a single demo request
	adminGroup.GET("/requests/:id", ctl.Get)

	// Update the follow-up status
	adminGroup.PATCH("/requests/:id/status", ctl.UpdateStatus)
}
