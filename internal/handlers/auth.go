package handlers

import (
	"net/http"

	"github.com/Sandee004/Voterz/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type SignupRequest struct {
	Username string `json:"username" binding:"required" example:"tomisin"`
	Email    string `json:"email" binding:"required,email" example:"tomisin@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
	OrgType  string `json:"type" binding:"required" example:"school"`
	OrgName  string `json:"orgname" binding:"required" example:"Unilag SU"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"tomisin@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIs..."`
}

// Signup godoc
// @Summary      Register an organization account
// @Description  Create a new account; no token is issued on signup
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body SignupRequest true "Signup data"
// @Success      201 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "fill all fields"})
		return
	}

	if err := h.authService.Signup(req.Username, req.Email, req.Password, req.OrgType, req.OrgName); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{Message: "User created successfully"})
}

// Login godoc
// @Summary      Login and receive a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login data"
// @Success      200 {object} LoginResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "fill all fields"})
		return
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{AccessToken: token})
}
