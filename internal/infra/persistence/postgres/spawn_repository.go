package postgres

import (
	"context"
	"time"

	"pokeradar/internal/domain/entity"
	domainerrors "pokeradar/internal/domain/errors"
	"pokeradar/internal/domain/repository"
	"pokeradar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// spawnRepository implements the repository.SpawnRepository interface.
type spawnRepository struct {
	db *gorm.DB
}

// NewSpawnRepository is the constructor for spawnRepository.
func NewSpawnRepository(db *gorm.DB) repository.SpawnRepository {
	return &spawnRepository{
		db: db,
	}
}

// Upsert inserts or refreshes a spawn keyed by encounter id in a single
// ON CONFLICT statement, so a failure leaves the prior row untouched.
func (repo *spawnRepository) Upsert(ctx context.Context, spawn *entity.Spawn) error {
	spawnM := fromSpawnDomain(spawn)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "encounter_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"expiration_timestamp", "latitude", "longitude", "species_name", "spawn_point_id",
			}),
		}).
		Create(spawnM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required spawn information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert spawn")
	}

	return nil
}

// ListActive retrieves unexpired spawns ordered by soonest expiration.
func (repo *spawnRepository) ListActive(ctx context.Context, now time.Time) ([]*entity.Spawn, error) {
	var spawnModels []*model.SpawnModel

	if err := repo.db.WithContext(ctx).
		Where("expiration_timestamp > ?", now.Unix()).
		Order("expiration_timestamp ASC").
		Find(&spawnModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active spawns")
	}

	spawns := make([]*entity.Spawn, 0, len(spawnModels))
	for _, spawnM := range spawnModels {
		spawns = append(spawns, toSpawnDomain(spawnM))
	}

	return spawns, nil
}

// --- Mapper Functions ---

func toSpawnDomain(data *model.SpawnModel) *entity.Spawn {
	if data == nil {
		return nil
	}

	return &entity.Spawn{
		EncounterID:  data.EncounterID,
		ExpiresAt:    time.Unix(data.ExpirationTimestamp, 0),
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		SpeciesName:  data.SpeciesName,
		SpawnPointID: data.SpawnPointID,
	}
}

func fromSpawnDomain(data *entity.Spawn) *model.SpawnModel {
	if data == nil {
		return nil
	}

	return &model.SpawnModel{
		EncounterID:         data.EncounterID,
		ExpirationTimestamp: data.ExpiresAt.Unix(),
		Latitude:            data.Latitude,
		Longitude:           data.Longitude,
		SpeciesName:         data.SpeciesName,
		SpawnPointID:        data.SpawnPointID,
	}
}
