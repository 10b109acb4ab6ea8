package postgres

import (
	"context"

	"pokeradar/internal/domain/entity"
	domainerrors "pokeradar/internal/domain/errors"
	"pokeradar/internal/domain/repository"
	"pokeradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// positionRepository implements the repository.PositionRepository interface.
type positionRepository struct {
	db *gorm.DB
}

// NewPositionRepository is the constructor for positionRepository.
func NewPositionRepository(db *gorm.DB) repository.PositionRepository {
	return &positionRepository{
		db: db,
	}
}

// Record appends a new position row for a user.
func (repo *positionRepository) Record(ctx context.Context, position *entity.Position) error {
	positionM := &model.PositionModel{
		UserID:    position.UserID,
		Timestamp: position.Timestamp,
		Latitude:  position.Latitude,
		Longitude: position.Longitude,
	}

	if err := repo.db.WithContext(ctx).Create(positionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record position")
	}

	return nil
}

// FindLatest retrieves the most recently recorded position of a user.
func (repo *positionRepository) FindLatest(ctx context.Context, userID uuid.UUID) (*entity.Position, error) {
	var positionM model.PositionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		First(&positionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPositionNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest position")
	}

	return &entity.Position{
		UserID:    positionM.UserID,
		Timestamp: positionM.Timestamp,
		Latitude:  positionM.Latitude,
		Longitude: positionM.Longitude,
	}, nil
}
