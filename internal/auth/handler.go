package auth

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anirudhs017/event-management-backend/internal/apperror"
)

type Handler struct {
	Service Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{Service: svc}
}

// =============================
// POST /auth/register
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Service.Register(c.Request.Context(), &req)
	if err != nil {
		status := apperror.HTTPStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("user registration failed: %v", err)
		}
		c.JSON(status, gin.H{"error": apperror.PublicMessage(err)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "user registered successfully",
		"user":    user,
	})
}

// =============================
// POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, user, err := h.Service.Login(c.Request.Context(), &req)
	if err != nil {
		// invalid credentials always comes back as 401 regardless of whether
		// the username or the password was wrong
		status := apperror.HTTPStatus(err)
		if status == http.StatusBadRequest {
			status = http.StatusUnauthorized
		}
		c.JSON(status, gin.H{"error": "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"user":          user,
	})
}

// =============================
// POST /auth/refresh
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accessToken, err := h.Service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		status := apperror.HTTPStatus(err)
		if status == http.StatusBadRequest {
			status = http.StatusUnauthorized
		}
		if status == http.StatusInternalServerError {
			log.Printf("token refresh failed: %v", err)
		}
		c.JSON(status, gin.H{"error": apperror.PublicMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": accessToken})
}

// =============================
// POST /auth/logout
func (h *Handler) Logout(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}
