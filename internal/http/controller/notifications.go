package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"socialstream/internal/http/dto"
)

func (h *Handler) ListNotifications(c *gin.Context) {
	actor, ok := h.caller(c)
	if !ok {
		return
	}
	records, err := h.notify.List(c.Request.Context(), actor.UserID, h.cfg.NotificationsLimit)
	if err != nil {
		h.writeError(c, err, "failed to list notifications", zap.String("user_id", actor.UserID))
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) MarkNotificationRead(c *gin.Context) {
	actor, ok := h.caller(c)
	if !ok {
		return
	}
	notification, err := h.notify.MarkRead(c.Request.Context(), c.Param("id"), actor.UserID)
	if err != nil {
		h.writeError(c, err, "failed to mark notification read", zap.String("notification_id", c.Param("id")))
		return
	}
	c.JSON(http.StatusOK, notification)
}

func (h *Handler) MarkAllNotificationsRead(c *gin.Context) {
	actor, ok := h.caller(c)
	if !ok {
		return
	}
	if err := h.notify.MarkAllRead(c.Request.Context(), actor.UserID); err != nil {
		h.writeError(c, err, "failed to mark notifications read", zap.String("user_id", actor.UserID))
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Code: "ok", Message: "all notifications marked as read"})
}

func (h *Handler) UnreadNotificationsCount(c *gin.Context) {
	actor, ok := h.caller(c)
	if !ok {
		return
	}
	count, err := h.notify.UnreadCount(c.Request.Context(), actor.UserID)
	if err != nil {
		h.writeError(c, err, "failed to count unread notifications", zap.String("user_id", actor.UserID))
		return
	}
	c.JSON(http.StatusOK, dto.UnreadCountResponse{Count: count})
}
