package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models/dto"
	"github.com/anjellyyy/smart-hostel-management-system/internal/app/services"
	"github.com/anjellyyy/smart-hostel-management-system/internal/middleware"
)

// AuthController handles registration, login and logout requests
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register creates a new account with the default user role.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("All fields are required"))
		return
	}

	if err := c.authService.Register(ctx, req.Username, req.Email, req.Password); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Message: "User registered successfully",
	})
}

// Login verifies credentials and returns the user with an access token.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Username and password are required"))
		return
	}

	user, token, err := c.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Message: "Login successful",
		User: &dto.AuthUserData{
			Username: user.Username,
			Role:     user.Role,
		},
		Token: token,
	})
}

// Logout acknowledges the logout. Sessions are stateless, so there is
// nothing to invalidate server side.
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}
