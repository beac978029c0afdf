package handler

import (
	"log/slog"
	"net/http"

	"github.com/duniya2no/ReMeet/internal/delivery/http/middleware"
	"github.com/duniya2no/ReMeet/internal/delivery/http/response"
	"github.com/duniya2no/ReMeet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PurchaseHandler holds dependencies for plan purchase and help request handlers.
type PurchaseHandler struct {
	purchaseUC usecase.PurchaseUsecase
	helpUC     usecase.HelpUsecase
	logger     *slog.Logger
}

// NewPurchaseHandler is the constructor for PurchaseHandler, injected by Fx.
func NewPurchaseHandler(purchaseUC usecase.PurchaseUsecase, helpUC usecase.HelpUsecase, logger *slog.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseUC: purchaseUC,
		helpUC:     helpUC,
		logger:     logger,
	}
}

type purchaseRequest struct {
	Plan  string `json:"plan" validate:"required"`
	Price string `json:"price" validate:"required"`
}

type helpRequest struct {
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Record handles the plan purchase request.
func (h *PurchaseHandler) Record(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req purchaseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	purchase, err := h.purchaseUC.Record(c.Request().Context(), userID, usecase.PurchaseInput{
		Plan:  req.Plan,
		Price: req.Price,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, purchase, "Purchase recorded successfully")
}

// History handles the purchase history request.
func (h *PurchaseHandler) History(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	purchases, err := h.purchaseUC.History(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, purchases, "Purchase history retrieved successfully")
}

// SubmitHelp handles help request submissions. The route is public; when the
// caller is authenticated the request is linked to their account.
func (h *PurchaseHandler) SubmitHelp(c echo.Context) error {
	var req helpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid help request input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	var userID *uuid.UUID
	if id, ok := middleware.UserID(c); ok {
		userID = &id
	}

	request, err := h.helpUC.Submit(c.Request().Context(), userID, usecase.HelpRequestInput{
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Help request submitted successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
