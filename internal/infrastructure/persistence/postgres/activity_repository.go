package postgres

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/rafabene/userhub-backend/internal/domain/entities"
	"github.com/rafabene/userhub-backend/internal/domain/repositories"
)

// ActivityRepository implementa repositories.ActivityRepository
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository cria um novo ActivityRepository
func NewActivityRepository(db *gorm.DB) repositories.ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Insert(ctx context.Context, entry *entities.ActivityLogEntry) error {
	model, err := activityToModel(entry)
	if err != nil {
		return err
	}
	return getDB(ctx, r.db).Create(model).Error
}

func (r *ActivityRepository) ListByUser(ctx context.Context, userID string, limit int) ([]entities.ActivityLogEntry, error) {
	var models []ActivityLogModel

	err := getDB(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return activitiesToEntities(models)
}

func (r *ActivityRepository) ListAll(ctx context.Context) ([]entities.ActivityLogEntry, error) {
	var models []ActivityLogModel

	// Ordem ascendente: a agregação depende dela para "últimas N"
	if err := getDB(ctx, r.db).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	return activitiesToEntities(models)
}

// Conversores
func activityToModel(entry *entities.ActivityLogEntry) (*ActivityLogModel, error) {
	metadata := ""
	if len(entry.Metadata) > 0 {
		data, err := json.Marshal(entry.Metadata)
		if err != nil {
			return nil, err
		}
		metadata = string(data)
	}

	return &ActivityLogModel{
		ID:           entry.ID,
		UserID:       entry.UserID,
		ActivityType: entry.ActivityType,
		Description:  entry.Description,
		Metadata:     metadata,
		CreatedAt:    entry.CreatedAt,
	}, nil
}

func activityToEntity(model *ActivityLogModel) entities.ActivityLogEntry {
	entry := entities.ActivityLogEntry{
		ID:           model.ID,
		UserID:       model.UserID,
		ActivityType: model.ActivityType,
		Description:  model.Description,
		CreatedAt:    model.CreatedAt,
	}

	if model.Metadata != "" {
		// Metadata malformada não invalida o evento
		_ = json.Unmarshal([]byte(model.Metadata), &entry.Metadata)
	}

	return entry
}

func activitiesToEntities(models []ActivityLogModel) ([]entities.ActivityLogEntry, error) {
	entries := make([]entities.ActivityLogEntry, 0, len(models))
	for i := range models {
		entries = append(entries, activityToEntity(&models[i]))
	}
	return entries, nil
}
