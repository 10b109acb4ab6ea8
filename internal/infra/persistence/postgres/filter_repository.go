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

// filterRepository implements the repository.FilterRepository interface.
type filterRepository struct {
	db *gorm.DB
}

// NewFilterRepository is the constructor for filterRepository.
func NewFilterRepository(db *gorm.DB) repository.FilterRepository {
	return &filterRepository{
		db: db,
	}
}

// Add inserts the (user, species) pair. The composite primary key turns a
// duplicate add into ErrDuplicateFilter.
func (repo *filterRepository) Add(ctx context.Context, userID uuid.UUID, speciesID int) error {
	filterM := &model.FilterModel{
		UserID:    userID,
		SpeciesID: speciesID,
	}

	if err := repo.db.WithContext(ctx).Create(filterM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFilter
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or species reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add filter")
	}

	return nil
}

// Remove deletes the (user, species) pair. Absent pairs are a no-op.
func (repo *filterRepository) Remove(ctx context.Context, userID uuid.UUID, speciesID int) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND species_id = ?", userID, speciesID).
		Delete(&model.FilterModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove filter")
	}

	return nil
}

// ListSpecies retrieves the species a user is subscribed to, joined against
// the catalog, fully materialized.
func (repo *filterRepository) ListSpecies(ctx context.Context, userID uuid.UUID) ([]*entity.Species, error) {
	var speciesModels []*model.SpeciesModel

	if err := repo.db.WithContext(ctx).
		Model(&model.SpeciesModel{}).
		Joins("JOIN user_filters ON user_filters.species_id = species.id").
		Where("user_filters.user_id = ?", userID).
		Order("species.id ASC").
		Find(&speciesModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list filter species")
	}

	species := make([]*entity.Species, 0, len(speciesModels))
	for _, speciesM := range speciesModels {
		species = append(species, toSpeciesDomain(speciesM))
	}

	return species, nil
}
