package handler

import (
	"log/slog"
	"net/http"

	"pokeradar/internal/delivery/http/response"
	"pokeradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SpeciesHandler holds dependencies for catalog handlers.
type SpeciesHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewSpeciesHandler is the constructor for SpeciesHandler, injected by Fx.
func NewSpeciesHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *SpeciesHandler {
	return &SpeciesHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListSpecies retrieves the full species catalog.
func (h *SpeciesHandler) ListSpecies(c echo.Context) error {
	catalog, err := h.uc.ListSpecies(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, catalog, "")
}

// SaveSpecies adds or updates one catalog entry.
func (h *SpeciesHandler) SaveSpecies(c echo.Context) error {
	var input usecase.SaveSpeciesInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid species input")
	}

	species, err := h.uc.SaveSpecies(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, species, "Species saved")
}
