package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/e3mc/bschool-admin/internal/app/models/dto"
	"github.com/e3mc/bschool-admin/internal/app/services"
	"github.com/e3mc/bschool-admin/internal/middleware"
)

// AuthController handles admin registration and login.
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register creates a new admin account.
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, bindError(err))
		return
	}

	if err := ctrl.authService.Register(c.Request.Context(), req.Username, req.Password); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Admin registered successfully"})
}

// Login verifies credentials and returns a bearer token.
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, bindError(err))
		return
	}

	token, err := ctrl.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{Message: "Login successful", Token: token})
}

// Dashboard is the authenticated welcome probe the client calls to check
// that a stored token is still valid.
func (ctrl *AuthController) Dashboard(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)
	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Welcome %s", username),
	})
}
