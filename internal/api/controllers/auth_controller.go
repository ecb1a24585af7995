package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"workwithme/internal/models/request_models"
	"workwithme/internal/models/response_models"
	"workwithme/internal/services"
	"workwithme/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login godoc
// @Summary Authenticate as admin
// @Description Checks the admin password and returns a session token
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} response_models.AuthResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/admin/auth [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req request_models.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := ac.authService.Authenticate(req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response_models.AuthResponse{
		Authenticated: true,
		Message:       "Authentication successful",
		Token:         token,
	})
}
