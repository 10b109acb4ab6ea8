package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pokeradar/config"
	"pokeradar/internal/domain/entity"
	"pokeradar/internal/domain/repository"
	"pokeradar/internal/usecase"
)

var (
	// ErrInvalidChatID is returned when the chat id is missing or blank
	ErrInvalidChatID = errors.New("chat id is required")
	// ErrInvalidCoordinates is returned when a position is outside valid bounds
	ErrInvalidCoordinates = errors.New("coordinates out of range")
	// ErrRadiusOutOfRange is returned when a radius is outside the configured bounds
	ErrRadiusOutOfRange = errors.New("radius out of range")
)

type accountService struct {
	userRepo     repository.UserRepository
	positionRepo repository.PositionRepository
	config       *config.Config
}

// NewAccountService creates a new account service instance
func NewAccountService(
	userRepo repository.UserRepository,
	positionRepo repository.PositionRepository,
	cfg *config.Config,
) usecase.AccountUsecase {
	return &accountService{
		userRepo:     userRepo,
		positionRepo: positionRepo,
		config:       cfg,
	}
}

// Register creates a user on first contact or refreshes the stored profile
// fields of an existing one.
func (s *accountService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	chatID := strings.TrimSpace(input.ChatID)
	if chatID == "" {
		return nil, ErrInvalidChatID
	}

	user := &entity.User{
		ChatID:       chatID,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Username:     input.Username,
		RadiusMeters: s.config.Radar.DefaultRadiusMeters,
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	// Re-read so an existing user's configured radius is reported, not the
	// default carried by the upsert.
	saved, err := s.userRepo.FindByChatID(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}

	return saved, nil
}

// Get retrieves a user by chat id.
func (s *accountService) Get(ctx context.Context, chatID string) (*entity.User, error) {
	user, err := s.userRepo.FindByChatID(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// UpdatePosition appends a new position for the user.
func (s *accountService) UpdatePosition(ctx context.Context, chatID string, latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return ErrInvalidCoordinates
	}

	user, err := s.userRepo.FindByChatID(ctx, chatID)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}

	position := &entity.Position{
		UserID:    user.ID,
		Timestamp: time.Now(),
		Latitude:  latitude,
		Longitude: longitude,
	}

	if err := s.positionRepo.Record(ctx, position); err != nil {
		return fmt.Errorf("failed to record position: %w", err)
	}

	return nil
}

// SetRadius changes the user's notification radius in meters.
func (s *accountService) SetRadius(ctx context.Context, chatID string, radiusMeters float64) error {
	if radiusMeters <= 0 || radiusMeters > s.config.Radar.MaxRadiusMeters {
		return fmt.Errorf("%w: must be between 0 and %.0f meters", ErrRadiusOutOfRange, s.config.Radar.MaxRadiusMeters)
	}

	user, err := s.userRepo.FindByChatID(ctx, chatID)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.userRepo.UpdateRadius(ctx, user.ID, radiusMeters); err != nil {
		return fmt.Errorf("failed to update radius: %w", err)
	}

	return nil
}
