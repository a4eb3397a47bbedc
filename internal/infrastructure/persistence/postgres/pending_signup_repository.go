package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/userhub-backend/internal/domain/entities"
	"github.com/rafabene/userhub-backend/internal/domain/repositories"
)

// PendingSignupRepository implementa repositories.PendingSignupRepository
type PendingSignupRepository struct {
	db *gorm.DB
}

// NewPendingSignupRepository cria um novo PendingSignupRepository
func NewPendingSignupRepository(db *gorm.DB) repositories.PendingSignupRepository {
	return &PendingSignupRepository{db: db}
}

func (r *PendingSignupRepository) Create(ctx context.Context, signup *entities.PendingSignup) error {
	model := PendingSignupModel{
		ID:        signup.ID,
		UserID:    signup.UserID,
		Email:     signup.Email,
		Status:    signup.Status,
		CreatedAt: signup.CreatedAt,
	}
	return getDB(ctx, r.db).Create(&model).Error
}

func (r *PendingSignupRepository) FindByEmail(ctx context.Context, email string) (*entities.PendingSignup, error) {
	var model PendingSignupModel

	if err := getDB(ctx, r.db).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return signupToEntity(&model), nil
}

func (r *PendingSignupRepository) UpdateStatusByEmail(ctx context.Context, email, status string) error {
	return getDB(ctx, r.db).Model(&PendingSignupModel{}).
		Where("email = ?", email).
		Update("status", status).Error
}

func (r *PendingSignupRepository) ListAll(ctx context.Context) ([]entities.PendingSignup, error) {
	var models []PendingSignupModel

	if err := getDB(ctx, r.db).Find(&models).Error; err != nil {
		return nil, err
	}

	signups := make([]entities.PendingSignup, 0, len(models))
	for i := range models {
		signups = append(signups, *signupToEntity(&models[i]))
	}
	return signups, nil
}

func signupToEntity(model *PendingSignupModel) *entities.PendingSignup {
	return &entities.PendingSignup{
		ID:        model.ID,
		UserID:    model.UserID,
		Email:     model.Email,
		Status:    model.Status,
		CreatedAt: model.CreatedAt,
	}
}
