package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/userhub-backend/internal/domain/entities"
	"github.com/rafabene/userhub-backend/internal/domain/repositories"
)

// ProfileRepository implementa repositories.ProfileRepository
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository cria um novo ProfileRepository
func NewProfileRepository(db *gorm.DB) repositories.ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	model := profileToModel(profile)
	return getDB(ctx, r.db).Create(model).Error
}

func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*entities.Profile, error) {
	var model ProfileModel

	if err := getDB(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return profileToEntity(&model), nil
}

func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*entities.Profile, error) {
	var model ProfileModel

	if err := getDB(ctx, r.db).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return profileToEntity(&model), nil
}

func (r *ProfileRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return getDB(ctx, r.db).Model(&ProfileModel{}).Where("id = ?", id).Updates(fields).Error
}

func (r *ProfileRepository) ListAll(ctx context.Context) ([]entities.Profile, error) {
	var models []ProfileModel

	if err := getDB(ctx, r.db).Find(&models).Error; err != nil {
		return nil, err
	}

	profiles := make([]entities.Profile, 0, len(models))
	for i := range models {
		profiles = append(profiles, *profileToEntity(&models[i]))
	}
	return profiles, nil
}

// Conversores
func profileToModel(profile *entities.Profile) *ProfileModel {
	return &ProfileModel{
		ID:        profile.ID,
		Email:     profile.Email,
		FullName:  profile.FullName,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		AvatarURL: profile.AvatarURL,
		Website:   profile.Website,
		Username:  profile.Username,
		Role:      string(profile.Role),
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}
}

func profileToEntity(model *ProfileModel) *entities.Profile {
	return &entities.Profile{
		ID:        model.ID,
		Email:     model.Email,
		FullName:  model.FullName,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		AvatarURL: model.AvatarURL,
		Website:   model.Website,
		Username:  model.Username,
		Role:      entities.Role(model.Role),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
