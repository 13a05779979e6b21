package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamhubhq/teamhub-api/internal/dto"
	apierrors "github.com/teamhubhq/teamhub-api/internal/errors"
	"github.com/teamhubhq/teamhub-api/internal/logging"
	"github.com/teamhubhq/teamhub-api/internal/services"
	"github.com/teamhubhq/teamhub-api/internal/utils"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Signup registers a new user. The response never contains the password or
// email.
func (h *AuthHandler) Signup(c *gin.Context) {
	type SignupRequest struct {
		Name      string `json:"name" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required,min=6"`
		AvatarURL string `json:"avatarUrl"`
	}

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, utils.ValidationMessages(err))
		return
	}

	user, err := h.authService.Signup(services.SignupInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			apierrors.Conflict(c, "Email already registered")
			return
		}
		logging.Logger.WithError(err).Error("signup failed")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"data":    dto.ToUserRefDTO(*user),
	})
}

// Login authenticates a user and returns a signed access token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, utils.ValidationMessages(err))
		return
	}

	user, accessToken, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			apierrors.Unauthorized(c, "User not found")
		case errors.Is(err, services.ErrInvalidCredentials):
			apierrors.Unauthorized(c, "Invalid credentials")
		default:
			logging.Logger.WithError(err).Error("login failed")
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Login successful",
		"data":        dto.ToUserRefDTO(*user),
		"accessToken": accessToken,
	})
}

// ListUsers returns the user directory used for picking assignees.
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers()
	if err != nil {
		logging.Logger.WithError(err).Error("failed to list users")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": dto.ToUserDTOs(users),
	})
}
