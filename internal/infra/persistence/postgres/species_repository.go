package postgres

import (
	"context"

	"pokeradar/internal/domain/entity"
	domainerrors "pokeradar/internal/domain/errors"
	"pokeradar/internal/domain/repository"
	"pokeradar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// speciesRepository implements the repository.SpeciesRepository interface.
type speciesRepository struct {
	db *gorm.DB
}

// NewSpeciesRepository is the constructor for speciesRepository.
func NewSpeciesRepository(db *gorm.DB) repository.SpeciesRepository {
	return &speciesRepository{
		db: db,
	}
}

// Save upserts a catalog entry keyed by id.
func (repo *speciesRepository) Save(ctx context.Context, species *entity.Species) error {
	speciesM := fromSpeciesDomain(species)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "internal_name", "rarity"}),
		}).
		Create(speciesM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("internal name already in catalog")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save species")
	}

	return nil
}

// All retrieves the full catalog ordered by id.
func (repo *speciesRepository) All(ctx context.Context) ([]*entity.Species, error) {
	var speciesModels []*model.SpeciesModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&speciesModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list species")
	}

	catalog := make([]*entity.Species, 0, len(speciesModels))
	for _, speciesM := range speciesModels {
		catalog = append(catalog, toSpeciesDomain(speciesM))
	}

	return catalog, nil
}

// FindByName retrieves a catalog entry by internal or display name.
func (repo *speciesRepository) FindByName(ctx context.Context, name string) (*entity.Species, error) {
	var speciesM model.SpeciesModel

	if err := repo.db.WithContext(ctx).
		Where("internal_name = ? OR name = ?", name, name).
		First(&speciesM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSpeciesNotFound
		}

		return nil, errors.Wrap(err, "failed to find species by name")
	}

	return toSpeciesDomain(&speciesM), nil
}

// --- Mapper Functions ---

func toSpeciesDomain(data *model.SpeciesModel) *entity.Species {
	if data == nil {
		return nil
	}

	return &entity.Species{
		ID:           data.ID,
		Name:         data.Name,
		InternalName: data.InternalName,
		Rarity:       data.Rarity,
	}
}

func fromSpeciesDomain(data *entity.Species) *model.SpeciesModel {
	if data == nil {
		return nil
	}

	return &model.SpeciesModel{
		ID:           data.ID,
		Name:         data.Name,
		InternalName: data.InternalName,
		Rarity:       data.Rarity,
	}
}
