package handler

import (
	"log/slog"
	"net/http"

	"pokeradar/internal/delivery/http/response"
	"pokeradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SubscriptionHandler holds dependencies for species filter handlers.
type SubscriptionHandler struct {
	uc     usecase.SubscriptionUsecase
	logger *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler, injected by Fx.
func NewSubscriptionHandler(uc usecase.SubscriptionUsecase, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		uc:     uc,
		logger: logger,
	}
}

type addFiltersRequest struct {
	Species []string `json:"species" validate:"required,min=1,dive,required"`
}

// AddFilters subscribes a user to one or more species in a single batch.
func (h *SubscriptionHandler) AddFilters(c echo.Context) error {
	var req addFiltersRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid filter input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	added, err := h.uc.AddFilters(c.Request().Context(), c.Param("chat_id"), req.Species)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, added, "Filters added")
}

// ListFilters retrieves the user's current species subscriptions.
func (h *SubscriptionHandler) ListFilters(c echo.Context) error {
	species, err := h.uc.ListFilters(c.Request().Context(), c.Param("chat_id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, species, "")
}

// RemoveFilter unsubscribes the user from one species.
func (h *SubscriptionHandler) RemoveFilter(c echo.Context) error {
	if err := h.uc.RemoveFilter(c.Request().Context(), c.Param("chat_id"), c.Param("species")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Filter removed")
}
