package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/labax/labax-server/config"
)

// RegisterStaticRoutes serves the public site. Unknown /api paths get a
// JSON 404; any other unknown path falls back to index.html.
func RegisterStaticRoutes(router *gin.Engine, cfg *config.Config) {
	publicDir := cfg.PublicDir

	router.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path

		if path == "/api" || strings.HasPrefix(path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "API endpoint not found",
			})
			return
		}

		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusMethodNotAllowed)
			return
		}

		switch path {
		case "/":
			c.File(filepath.Join(publicDir, "index.html"))
			return
		case "/demo":
			c.File(filepath.Join(publicDir, "demo.html"))
			return
		}

		// filepath.Clean keeps the candidate under the public dir.
		candidate := filepath.Join(publicDir, filepath.Clean("/"+path))
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			c.File(candidate)
			return
		}

		c.File(filepath.Join(publicDir, "index.html"))
	})
}
