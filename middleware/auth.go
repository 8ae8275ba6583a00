package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/labax/labax-server/config"
	"github.com/labax/labax-server/utils"
)

// AdminAuth guards the admin endpoints with a bearer token. When no admin
// password is configured the guard is disabled and requests pass through,
// matching the open deployment the site started with.
func AdminAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.AdminPassword == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.HandleError(c, utils.CreateUnauthorizedError())
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if err := utils.ParseAdminToken(cfg.JWTKey, token); err != nil {
			utils.LogError(err, map[string]interface{}{"path": c.Request.URL.Path}, "admin token rejected")
			utils.HandleError(c, utils.CreateUnauthorizedError())
			c.Abort()
			return
		}

		c.Next()
	}
}
