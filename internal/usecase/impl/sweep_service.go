package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"pokeradar/config"
	"pokeradar/internal/domain/entity"
	"pokeradar/internal/domain/repository"
	"pokeradar/internal/domain/service"
	"pokeradar/internal/geo"
	"pokeradar/internal/usecase"
)

type sweepService struct {
	userRepo         repository.UserRepository
	positionRepo     repository.PositionRepository
	spawnRepo        repository.SpawnRepository
	filterRepo       repository.FilterRepository
	notificationRepo repository.NotificationRepository
	dispatcher       service.Dispatcher
	publisher        service.EventPublisher
	logger           *slog.Logger
	workerCount      int
}

// NewSweepService creates a new sweep service instance
func NewSweepService(
	userRepo repository.UserRepository,
	positionRepo repository.PositionRepository,
	spawnRepo repository.SpawnRepository,
	filterRepo repository.FilterRepository,
	notificationRepo repository.NotificationRepository,
	dispatcher service.Dispatcher,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SweepUsecase {
	workerCount := cfg.Sweep.WorkerCount
	if workerCount <= 0 {
		workerCount = 1
	}

	return &sweepService{
		userRepo:         userRepo,
		positionRepo:     positionRepo,
		spawnRepo:        spawnRepo,
		filterRepo:       filterRepo,
		notificationRepo: notificationRepo,
		dispatcher:       dispatcher,
		publisher:        publisher,
		logger:           logger,
		workerCount:      workerCount,
	}
}

// Run executes one full matching pass. The user set and the active spawn
// set are both read once up front; a failure of either read aborts the
// pass so it never runs on a partial view. Per-user failures are logged
// and do not stop the remaining users.
func (s *sweepService) Run(ctx context.Context, now time.Time) (*usecase.SweepStats, error) {
	started := time.Now()

	users, err := s.userRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	spawns, err := s.spawnRepo.ListActive(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load active spawns: %w", err)
	}

	stats := &usecase.SweepStats{
		Users:  len(users),
		Spawns: len(spawns),
	}

	if len(users) == 0 || len(spawns) == 0 {
		stats.Elapsed = time.Since(started)

		return stats, nil
	}

	var (
		matched    atomic.Int64
		dispatched atomic.Int64
		deduped    atomic.Int64
	)

	jobs := make(chan *entity.User)

	var wg sync.WaitGroup
	for range s.workerCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for user := range jobs {
				counts, err := s.evaluateUser(ctx, now, user, spawns)
				if err != nil {
					s.logger.Error("sweep user evaluation failed",
						slog.String("chat_id", user.ChatID),
						slog.Any("error", err),
					)

					continue
				}

				matched.Add(counts.matched)
				dispatched.Add(counts.dispatched)
				deduped.Add(counts.deduped)
			}
		}()
	}

	for _, user := range users {
		jobs <- user
	}
	close(jobs)
	wg.Wait()

	stats.Matched = int(matched.Load())
	stats.Dispatched = int(dispatched.Load())
	stats.Deduped = int(deduped.Load())
	stats.Elapsed = time.Since(started)

	return stats, nil
}

type userCounts struct {
	matched    int64
	dispatched int64
	deduped    int64
}

// evaluateUser matches one user against the spawn snapshot. Users without
// a position or without filters are skipped quietly; they become eligible
// as soon as they report one.
func (s *sweepService) evaluateUser(ctx context.Context, now time.Time, user *entity.User, spawns []*entity.Spawn) (*userCounts, error) {
	counts := &userCounts{}

	position, err := s.positionRepo.FindLatest(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrPositionNotFound) {
			return counts, nil
		}

		return nil, fmt.Errorf("failed to load position: %w", err)
	}

	filters, err := s.filterRepo.ListSpecies(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load filters: %w", err)
	}
	if len(filters) == 0 {
		return counts, nil
	}

	subscribed := make(map[string]struct{}, len(filters)*2)
	for _, species := range filters {
		subscribed[species.InternalName] = struct{}{}
		subscribed[species.Name] = struct{}{}
	}

	origin := geo.Point{Latitude: position.Latitude, Longitude: position.Longitude}

	for _, spawn := range spawns {
		if _, ok := subscribed[spawn.SpeciesName]; !ok {
			continue
		}

		distance := geo.Distance(origin, geo.Point{Latitude: spawn.Latitude, Longitude: spawn.Longitude})
		if distance > user.RadiusMeters {
			// Out of reach this pass. No ledger entry is written, so the
			// user stays eligible if they move closer before expiry.
			continue
		}

		counts.matched++

		inserted, err := s.notificationRepo.TryInsert(ctx, spawn.EncounterID, user.ID)
		if err != nil {
			s.logger.Error("dedup ledger insert failed",
				slog.String("chat_id", user.ChatID),
				slog.String("encounter_id", spawn.EncounterID),
				slog.Any("error", err),
			)

			continue
		}
		if !inserted {
			counts.deduped++

			continue
		}

		alert := &service.SpawnAlert{
			EncounterID:    spawn.EncounterID,
			SpeciesName:    spawn.SpeciesName,
			Latitude:       spawn.Latitude,
			Longitude:      spawn.Longitude,
			DistanceMeters: distance,
			TimeRemaining:  spawn.Remaining(now),
			ExpiresAt:      spawn.ExpiresAt,
		}

		// The ledger entry stands even if delivery fails; at-most-once
		// beats duplicate alerts here.
		if err := s.dispatcher.Send(ctx, user.ChatID, alert); err != nil {
			s.logger.Error("alert dispatch failed",
				slog.String("chat_id", user.ChatID),
				slog.String("encounter_id", spawn.EncounterID),
				slog.Any("error", err),
			)

			continue
		}

		counts.dispatched++

		s.publishAlertEvent(ctx, user.ChatID, alert)
	}

	return counts, nil
}

// publishAlertEvent mirrors a dispatched alert onto the event bus. Failures
// are logged only; delivery to the user already happened.
func (s *sweepService) publishAlertEvent(ctx context.Context, chatID string, alert *service.SpawnAlert) {
	event := &service.SpawnAlertEvent{
		EncounterID:      alert.EncounterID,
		ChatID:           chatID,
		SpeciesName:      alert.SpeciesName,
		Latitude:         alert.Latitude,
		Longitude:        alert.Longitude,
		DistanceMeters:   alert.DistanceMeters,
		SecondsRemaining: int64(alert.TimeRemaining.Seconds()),
	}

	if err := s.publisher.PublishSpawnAlert(ctx, event); err != nil {
		s.logger.Warn("alert event publish failed",
			slog.String("encounter_id", alert.EncounterID),
			slog.Any("error", err),
		)
	}
}
