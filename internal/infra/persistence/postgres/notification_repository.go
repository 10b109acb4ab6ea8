package postgres

import (
	"context"

	domainerrors "pokeradar/internal/domain/errors"
	"pokeradar/internal/domain/repository"
	"pokeradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// TryInsert writes the (encounter, user) ledger entry. The composite
// primary key makes the insert fail under contention; that failure is the
// dedup signal, reported as (false, nil) rather than an error.
func (repo *notificationRepository) TryInsert(ctx context.Context, encounterID string, userID uuid.UUID) (bool, error) {
	notificationM := &model.NotificationModel{
		EncounterID: encounterID,
		UserID:      userID,
	}

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return false, nil
		}

		return false, domainerrors.NewDatabaseExecuteError(err, "failed to insert notification")
	}

	return true, nil
}
