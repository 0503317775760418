package notification

import (
	"log"
	"net/http"
	"strconv"

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
// GET /notifications
func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	notifications, err := h.Service.List(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// =============================
// PATCH /notifications/:id/read
func (h *Handler) MarkAsRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}

	if err := h.Service.MarkAsRead(c.Request.Context(), uint(id)); err != nil {
		status := apperror.HTTPStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("mark notification read failed: %v", err)
		}
		c.JSON(status, gin.H{"error": apperror.PublicMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "notification marked as read"})
}
