// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pokeradar/internal/delivery/http/response"
	"pokeradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// IngestHandler accepts spawn events from upstream feeds.
type IngestHandler struct {
	uc     usecase.SpawnIngestUsecase
	logger *slog.Logger
}

// NewIngestHandler is the constructor for IngestHandler, injected by Fx.
func NewIngestHandler(uc usecase.SpawnIngestUsecase, logger *slog.Logger) *IngestHandler {
	return &IngestHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerSpawnRequest struct {
	EncounterID         string  `json:"encounter_id" validate:"required"`
	ExpirationTimestamp int64   `json:"expiration_timestamp" validate:"required"`
	Latitude            float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude           float64 `json:"longitude" validate:"min=-180,max=180"`
	SpeciesName         string  `json:"species_name" validate:"required"`
	SpawnPointID        string  `json:"spawn_point_id"`
}

// RegisterSpawn handles a spawn event report. Feeds send expiration as
// epoch seconds.
func (h *IngestHandler) RegisterSpawn(c echo.Context) error {
	var req registerSpawnRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid spawn event")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	event := &usecase.SpawnEvent{
		EncounterID:  req.EncounterID,
		ExpiresAt:    time.Unix(req.ExpirationTimestamp, 0),
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		SpeciesName:  req.SpeciesName,
		SpawnPointID: req.SpawnPointID,
	}

	if err := h.uc.Register(c.Request().Context(), event); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{
		"encounter_id": req.EncounterID,
	}, "Spawn registered")
}
