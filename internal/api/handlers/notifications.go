package handlers

import (
	"net/http"

	"nucleav-frontend/internal/notify"

	"github.com/gin-gonic/gin"
)

// NotificationHandler hands queued notifications to the UI
type NotificationHandler struct {
	buffer *notify.Buffer
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(buffer *notify.Buffer) *NotificationHandler {
	return &NotificationHandler{buffer: buffer}
}

// Drain handles GET /notifications
// @Summary Drain pending notifications
// @Description Return and clear the toasts queued for the caller's session since the last call, oldest first
// @Tags notifications
// @Produce json
// @Success 200 {array} notify.Notification
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) Drain(c *gin.Context) {
	c.JSON(http.StatusOK, h.buffer.Drain(c.Request.Context()))
}
