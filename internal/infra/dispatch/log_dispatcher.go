package dispatch

import (
	"context"
	"log/slog"

	"pokeradar/internal/domain/service"
	"pokeradar/internal/util"
)

// logDispatcher writes alerts to the log instead of delivering them.
// Used in development and in environments without FCM credentials.
type logDispatcher struct {
	logger *slog.Logger
}

// NewLogDispatcher creates a dispatcher that only logs alerts.
func NewLogDispatcher(logger *slog.Logger) service.Dispatcher {
	return &logDispatcher{logger: logger}
}

func (d *logDispatcher) Send(_ context.Context, chatID string, alert *service.SpawnAlert) error {
	d.logger.Info("[LogDispatch] spawn alert",
		slog.String("chat_id", chatID),
		slog.String("encounter_id", alert.EncounterID),
		slog.String("species", alert.SpeciesName),
		slog.String("distance", util.FormatDistance(alert.DistanceMeters)),
		slog.String("remaining", util.FormatDuration(alert.TimeRemaining)),
	)

	return nil
}
