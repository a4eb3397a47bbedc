package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/userhub-backend/internal/domain/entities"
	"github.com/rafabene/userhub-backend/internal/domain/repositories"
	"github.com/rafabene/userhub-backend/internal/domain/valueobjects"
)

// UsageRepository implementa repositories.UsageRepository
type UsageRepository struct {
	db *gorm.DB
}

// NewUsageRepository cria um novo UsageRepository
func NewUsageRepository(db *gorm.DB) repositories.UsageRepository {
	return &UsageRepository{db: db}
}

func (r *UsageRepository) ListByUser(ctx context.Context, userID string) ([]entities.UsageRecord, error) {
	var models []UsageModel

	if err := getDB(ctx, r.db).Where("user_id = ?", userID).Find(&models).Error; err != nil {
		return nil, err
	}

	return usageToEntities(models), nil
}

func (r *UsageRepository) ListAll(ctx context.Context) ([]entities.UsageRecord, error) {
	var models []UsageModel

	if err := getDB(ctx, r.db).Find(&models).Error; err != nil {
		return nil, err
	}

	return usageToEntities(models), nil
}

func usageToEntities(models []UsageModel) []entities.UsageRecord {
	records := make([]entities.UsageRecord, 0, len(models))
	for _, m := range models {
		records = append(records, entities.UsageRecord{
			ID:          m.ID,
			UserID:      m.UserID,
			TotalTokens: m.TotalTokens,
			Cost:        valueobjects.Amount(m.Cost),
			CreatedAt:   m.CreatedAt,
		})
	}
	return records
}
