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

// matchRepository implements the repository.MatchRepository interface.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository is the constructor for matchRepository.
func NewMatchRepository(db *gorm.DB) repository.MatchRepository {
	return &matchRepository{
		db: db,
	}
}

// BatchCreateMatches persists the matches computed for one product creation.
func (repo *matchRepository) BatchCreateMatches(ctx context.Context, matches []*entity.ProximityMatch) error {
	if len(matches) == 0 {
		return nil
	}

	matchModels := make([]*model.ProximityMatchModel, 0, len(matches))
	for _, match := range matches {
		matchModels = append(matchModels, fromMatchDomain(match))
	}

	if err := repo.db.WithContext(ctx).Create(&matchModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create matches")
	}

	// Update the entities with generated values
	for i, matchM := range matchModels {
		matches[i].ID = matchM.ID
		matches[i].CreatedAt = matchM.CreatedAt
	}

	return nil
}

// UpdateMatchStatus updates the delivery status of a match.
func (repo *matchRepository) UpdateMatchStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProximityMatchModel{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update match status")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound.WrapMessage("match not found")
	}

	return nil
}

// FindMatchesByUser retrieves a user's match history, newest first.
func (repo *matchRepository) FindMatchesByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ProximityMatch, error) {
	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var matchModels []*model.ProximityMatchModel
	if err := query.Find(&matchModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find matches by user")
	}

	matches := make([]*entity.ProximityMatch, 0, len(matchModels))
	for _, matchM := range matchModels {
		matches = append(matches, toMatchDomain(matchM))
	}

	return matches, nil
}

// --- Mapper Functions ---

// toMatchDomain converts a GORM ProximityMatchModel to a domain ProximityMatch entity.
func toMatchDomain(data *model.ProximityMatchModel) *entity.ProximityMatch {
	if data == nil {
		return nil
	}

	return &entity.ProximityMatch{
		ID:         data.ID,
		ProductID:  data.ProductID,
		SearchID:   data.SearchID,
		UserID:     data.UserID,
		DistanceKm: data.DistanceKm,
		Status:     data.Status,
		CreatedAt:  data.CreatedAt,
	}
}

// fromMatchDomain converts a domain ProximityMatch entity to a GORM ProximityMatchModel.
func fromMatchDomain(data *entity.ProximityMatch) *model.ProximityMatchModel {
	if data == nil {
		return nil
	}

	return &model.ProximityMatchModel{
		ID:         data.ID,
		ProductID:  data.ProductID,
		SearchID:   data.SearchID,
		UserID:     data.UserID,
		DistanceKm: data.DistanceKm,
		Status:     data.Status,
		CreatedAt:  data.CreatedAt,
	}
}
