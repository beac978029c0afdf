package handler

import (
	"log/slog"
	"net/http"

	"github.com/duniya2no/ReMeet/internal/delivery/http/response"
	"github.com/duniya2no/ReMeet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for the notification feed handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the request for the feed, newest first.
func (h *NotificationHandler) List(c echo.Context) error {
	notifications, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}

// Delete handles the removal of a single notification.
func (h *NotificationHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Notification id must be a UUID")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification deleted successfully")
}

// Clear handles emptying the whole feed.
func (h *NotificationHandler) Clear(c echo.Context) error {
	removed, err := h.uc.Clear(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"removed": removed}, "Notifications cleared successfully")
}
