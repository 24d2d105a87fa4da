package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/gulfwash/carwash-scheduler/internal/httpresp"
	"github.com/gulfwash/carwash-scheduler/internal/middleware"
	"github.com/gulfwash/carwash-scheduler/internal/notify"
)

type NotificationHandler struct {
	svc *notify.Service
}

func NewNotificationHandler(svc *notify.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	items, err := h.svc.ListForUser(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, items)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.MarkRead(userID, id); err != nil {
		writeError(c, err)
		return
	}
	httpresp.Message(c, "Notification marked as read")
}
