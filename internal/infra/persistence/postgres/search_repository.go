// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/BeMaTech82/hortago/internal/domain/entity"
	domainerrors "github.com/BeMaTech82/hortago/internal/domain/errors"
	"github.com/BeMaTech82/hortago/internal/domain/repository"
	"github.com/BeMaTech82/hortago/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// searchRepository implements the repository.SearchRepository interface.
type searchRepository struct {
	db *gorm.DB
}

// NewSearchRepository is the constructor for searchRepository.
func NewSearchRepository(db *gorm.DB) repository.SearchRepository {
	return &searchRepository{
		db: db,
	}
}

// CreateSearch persists a new saved search.
func (repo *searchRepository) CreateSearch(ctx context.Context, search *entity.SavedSearch) error {
	searchM := fromSearchDomain(search)

	if err := repo.db.WithContext(ctx).Create(searchM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create saved search")
	}

	search.ID = searchM.ID
	search.CreatedAt = searchM.CreatedAt

	return nil
}

// FindSearchByID retrieves a saved search by its unique ID.
func (repo *searchRepository) FindSearchByID(ctx context.Context, id uuid.UUID) (*entity.SavedSearch, error) {
	var searchM model.SavedSearchModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&searchM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSearchNotFound
		}

		return nil, errors.Wrap(err, "failed to find saved search by ID")
	}

	return toSearchDomain(&searchM), nil
}

// FindSearchesByUser retrieves all saved searches registered by a user.
func (repo *searchRepository) FindSearchesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavedSearch, error) {
	var searchModels []*model.SavedSearchModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&searchModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find saved searches by user")
	}

	searches := make([]*entity.SavedSearch, 0, len(searchModels))
	for _, searchM := range searchModels {
		searches = append(searches, toSearchDomain(searchM))
	}

	return searches, nil
}

// FindAllSearches retrieves every registered saved search.
func (repo *searchRepository) FindAllSearches(ctx context.Context) ([]*entity.SavedSearch, error) {
	var searchModels []*model.SavedSearchModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&searchModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all saved searches")
	}

	searches := make([]*entity.SavedSearch, 0, len(searchModels))
	for _, searchM := range searchModels {
		searches = append(searches, toSearchDomain(searchM))
	}

	return searches, nil
}

// DeleteSearch removes a saved search.
func (repo *searchRepository) DeleteSearch(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SavedSearchModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete saved search")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSearchNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSearchDomain converts a GORM SavedSearchModel to a domain SavedSearch entity.
func toSearchDomain(data *model.SavedSearchModel) *entity.SavedSearch {
	if data == nil {
		return nil
	}

	return &entity.SavedSearch{
		ID:        data.ID,
		UserID:    data.UserID,
		Category:  entity.Category(data.Category),
		Keywords:  data.Keywords,
		RadiusKm:  data.RadiusKm,
		MaxPrice:  data.MaxPrice,
		CreatedAt: data.CreatedAt,
	}
}

// fromSearchDomain converts a domain SavedSearch entity to a GORM SavedSearchModel.
func fromSearchDomain(data *entity.SavedSearch) *model.SavedSearchModel {
	if data == nil {
		return nil
	}

	return &model.SavedSearchModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Category:  data.Category.String(),
		Keywords:  data.Keywords,
		RadiusKm:  data.RadiusKm,
		MaxPrice:  data.MaxPrice,
		CreatedAt: data.CreatedAt,
	}
}
