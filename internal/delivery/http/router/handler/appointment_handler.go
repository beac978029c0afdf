// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/duniya2no/ReMeet/internal/delivery/http/response"
	"github.com/duniya2no/ReMeet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AppointmentHandler holds dependencies for appointment lifecycle handlers.
type AppointmentHandler struct {
	uc          usecase.AppointmentUsecase
	reconcileUC usecase.ReconcileUsecase
	logger      *slog.Logger
}

// NewAppointmentHandler is the constructor for AppointmentHandler, injected by Fx.
func NewAppointmentHandler(uc usecase.AppointmentUsecase, reconcileUC usecase.ReconcileUsecase, logger *slog.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		uc:          uc,
		reconcileUC: reconcileUC,
		logger:      logger,
	}
}

// appointmentRequest is the wire shape for create and update.
type appointmentRequest struct {
	ClientName  string    `json:"clientName" validate:"required"`
	Phone       string    `json:"phone" validate:"required"`
	ScheduledAt time.Time `json:"scheduledAt" validate:"required"`
	Status      string    `json:"status"`
	Confirmed   bool      `json:"confirmed"`
}

func (r *appointmentRequest) toInput() usecase.AppointmentInput {
	return usecase.AppointmentInput{
		ClientName:  r.ClientName,
		Phone:       r.Phone,
		ScheduledAt: r.ScheduledAt,
		Status:      r.Status,
		Confirmed:   r.Confirmed,
	}
}

// List handles the request for the full appointment list.
func (h *AppointmentHandler) List(c echo.Context) error {
	appointments, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointments, "Appointments retrieved successfully")
}

// GetOne handles the request for a single appointment.
func (h *AppointmentHandler) GetOne(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Appointment id must be a UUID")
	}

	appointment, err := h.uc.GetOne(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointment, "Appointment retrieved successfully")
}

// Create handles the appointment creation request.
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid appointment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	appointment, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, appointment, "Appointment created successfully")
}

// Update handles the appointment edit request.
func (h *AppointmentHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Appointment id must be a UUID")
	}

	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid appointment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	appointment, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointment, "Appointment updated successfully")
}

// Delete handles the appointment removal request. Deleting an id that is
// already gone succeeds, so clients can retry without special-casing.
func (h *AppointmentHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Appointment id must be a UUID")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Appointment deleted successfully")
}

// Reconcile triggers an immediate expiry sweep outside the cron cadence.
func (h *AppointmentHandler) Reconcile(c echo.Context) error {
	removed, err := h.reconcileUC.ReconcileExpired(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"removed": removed}, "Reconcile completed successfully")
}
