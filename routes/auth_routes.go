package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/labax/labax-server/config"
	"github.com/labax/labax-server/controllers"
)

// RegisterAuthRoutes registers the admin login endpoint. Only mounted when
// an admin password is configured.
func RegisterAuthRoutes(router *gin.Engine, cfg *config.Config) {
	if cfg.AdminPassword == "" {
		return
	}

	authCtl := controllers.NewAuthController(cfg)
	router.POST("/api/auth/login", authCtl.Login)
}
