package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/userhub-backend/internal/domain/entities"
	"github.com/rafabene/userhub-backend/internal/domain/repositories"
)

// PreferenceRepository implementa repositories.PreferenceRepository
type PreferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository cria um novo PreferenceRepository
func NewPreferenceRepository(db *gorm.DB) repositories.PreferenceRepository {
	return &PreferenceRepository{db: db}
}

func (r *PreferenceRepository) FindByUserID(ctx context.Context, userID string) (*entities.Preference, error) {
	var model PreferenceModel

	if err := getDB(ctx, r.db).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return prefToEntity(&model), nil
}

func (r *PreferenceRepository) Upsert(ctx context.Context, pref entities.Preference) error {
	model := PreferenceModel{
		UserID:             pref.UserID,
		Theme:              pref.Theme,
		Language:           pref.Language,
		Notifications:      pref.Notifications,
		EmailNotifications: pref.EmailNotifications,
	}

	return getDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"theme", "language", "notifications", "email_notifications", "updated_at",
		}),
	}).Create(&model).Error
}

func (r *PreferenceRepository) ListAll(ctx context.Context) ([]entities.Preference, error) {
	var models []PreferenceModel

	if err := getDB(ctx, r.db).Find(&models).Error; err != nil {
		return nil, err
	}

	prefs := make([]entities.Preference, 0, len(models))
	for i := range models {
		prefs = append(prefs, *prefToEntity(&models[i]))
	}
	return prefs, nil
}

func prefToEntity(model *PreferenceModel) *entities.Preference {
	return &entities.Preference{
		UserID:             model.UserID,
		Theme:              model.Theme,
		Language:           model.Language,
		Notifications:      model.Notifications,
		EmailNotifications: model.EmailNotifications,
	}
}
