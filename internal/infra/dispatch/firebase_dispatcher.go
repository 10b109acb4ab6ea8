// Package dispatch contains the alert delivery implementations.
package dispatch

import (
	"context"
	"fmt"
	"strconv"

	"pokeradar/internal/domain/service"
	"pokeradar/internal/util"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebaseDispatcher struct {
	client *messaging.Client
}

// NewFirebaseDispatcher creates a dispatcher that delivers spawn alerts
// over Firebase Cloud Messaging. The chat id is used as the FCM topic, so
// a user's devices subscribe to their own topic once.
func NewFirebaseDispatcher(ctx context.Context, credentialsPath string) (service.Dispatcher, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseDispatcher{
		client: client,
	}, nil
}

// Send delivers one spawn alert to the user's chat channel.
func (d *firebaseDispatcher) Send(ctx context.Context, chatID string, alert *service.SpawnAlert) error {
	message := &messaging.Message{
		Topic: "chat-" + chatID,
		Notification: &messaging.Notification{
			Title: fmt.Sprintf("%s nearby!", alert.SpeciesName),
			Body: fmt.Sprintf("%s away, despawns in %s",
				util.FormatDistance(alert.DistanceMeters),
				util.FormatDuration(alert.TimeRemaining),
			),
		},
		Data: map[string]string{
			"encounter_id": alert.EncounterID,
			"species":      alert.SpeciesName,
			"latitude":     strconv.FormatFloat(alert.Latitude, 'f', 6, 64),
			"longitude":    strconv.FormatFloat(alert.Longitude, 'f', 6, 64),
			"expires_at":   strconv.FormatInt(alert.ExpiresAt.Unix(), 10),
		},
	}

	if _, err := d.client.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send alert: %w", err)
	}

	return nil
}
