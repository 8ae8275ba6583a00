package controllers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labax/labax-server/config"
	"github.com/labax/labax-server/models"
	"github.com/labax/labax-server/utils"
)

// AuthController issues admin tokens for the protected endpoints.
type AuthController struct {
	cfg *config.Config
}

// NewAuthController wires the controller.
func NewAuthController(cfg *config.Config) *AuthController {
	return &AuthController{cfg: cfg}
}

// Login handles POST /api/auth/login.
func (ctl *AuthController) Login(c *gin.Context) {
	var input models.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, "Password is required", http.StatusBadRequest)
		return
	}

	if subtle.ConstantTimeCompare([]byte(input.Password), []byte(ctl.cfg.AdminPassword)) != 1 {
		utils.ErrorResponse(c, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateAdminToken(ctl.cfg.JWTKey)
	if err != nil {
		utils.LogError(err, nil, "failed to sign admin token")
		utils.ErrorResponse(c, "Failed to log in", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}
