package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/duniya2no/ReMeet/internal/delivery/http/response"
	"github.com/duniya2no/ReMeet/internal/infra/feed"
	"github.com/duniya2no/ReMeet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// streamHeartbeat keeps idle SSE connections alive through proxies.
const streamHeartbeat = 30 * time.Second

// ScheduleHandler holds dependencies for the derived schedule views.
type ScheduleHandler struct {
	uc     usecase.ScheduleUsecase
	hub    *feed.Hub
	logger *slog.Logger
}

// NewScheduleHandler is the constructor for ScheduleHandler, injected by Fx.
func NewScheduleHandler(uc usecase.ScheduleUsecase, hub *feed.Hub, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		uc:     uc,
		hub:    hub,
		logger: logger,
	}
}

// Today handles the request for the current day's appointments.
func (h *ScheduleHandler) Today(c echo.Context) error {
	appointments, err := h.uc.Today(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointments, "Today's appointments retrieved successfully")
}

// Preview handles the request for the dashboard's upcoming card.
func (h *ScheduleHandler) Preview(c echo.Context) error {
	appointments, err := h.uc.Preview(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointments, "Preview retrieved successfully")
}

// Weekly handles the request for the weekday-grouped agenda.
func (h *ScheduleHandler) Weekly(c echo.Context) error {
	groups, err := h.uc.WeeklyAgenda(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, groups, "Weekly agenda retrieved successfully")
}

// Stream pushes schedule snapshots over Server-Sent Events. A snapshot is
// sent on connect and after every appointment mutation; rapid bursts of
// mutations coalesce into a single re-emit.
func (h *ScheduleHandler) Stream(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/event-stream")
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().Header().Set(echo.HeaderConnection, "keep-alive")
	c.Response().WriteHeader(http.StatusOK)

	signal, cancel := h.hub.Subscribe()
	defer cancel()

	ctx := c.Request().Context()
	if err := h.writeSnapshot(c); err != nil {
		return err
	}

	heartbeat := time.NewTicker(streamHeartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-signal:
			if err := h.writeSnapshot(c); err != nil {
				return err
			}
		case <-heartbeat.C:
			if _, err := fmt.Fprint(c.Response(), ": ping\n\n"); err != nil {
				return errors.Wrap(err, "failed to write heartbeat")
			}
			c.Response().Flush()
		}
	}
}

func (h *ScheduleHandler) writeSnapshot(c echo.Context) error {
	views, err := h.uc.Views(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	payload, err := json.Marshal(views)
	if err != nil {
		return errors.Wrap(err, "failed to marshal schedule snapshot")
	}

	if _, err := fmt.Fprintf(c.Response(), "event: schedule\ndata: %s\n\n", payload); err != nil {
		return errors.Wrap(err, "failed to write schedule snapshot")
	}
	c.Response().Flush()

	return nil
}
