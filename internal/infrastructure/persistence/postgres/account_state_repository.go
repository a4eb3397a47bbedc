package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/userhub-backend/internal/domain/entities"
	"github.com/rafabene/userhub-backend/internal/domain/repositories"
)

// AccountStateRepository implementa repositories.AccountStateRepository
type AccountStateRepository struct {
	db *gorm.DB
}

// NewAccountStateRepository cria um novo AccountStateRepository
func NewAccountStateRepository(db *gorm.DB) repositories.AccountStateRepository {
	return &AccountStateRepository{db: db}
}

func (r *AccountStateRepository) Create(ctx context.Context, state *entities.AccountState) error {
	model := stateToModel(state)
	return getDB(ctx, r.db).Create(model).Error
}

func (r *AccountStateRepository) FindByID(ctx context.Context, id string) (*entities.AccountState, error) {
	var model AccountStateModel

	if err := getDB(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return stateToEntity(&model), nil
}

func (r *AccountStateRepository) SetActive(ctx context.Context, id string, active bool) error {
	return getDB(ctx, r.db).Model(&AccountStateModel{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

func (r *AccountStateRepository) ListAll(ctx context.Context) ([]entities.AccountState, error) {
	var models []AccountStateModel

	if err := getDB(ctx, r.db).Find(&models).Error; err != nil {
		return nil, err
	}

	states := make([]entities.AccountState, 0, len(models))
	for i := range models {
		states = append(states, *stateToEntity(&models[i]))
	}
	return states, nil
}

// Conversores
func stateToModel(state *entities.AccountState) *AccountStateModel {
	return &AccountStateModel{
		ID:                  state.ID,
		Email:               state.Email,
		SubscriptionTier:    string(state.SubscriptionTier),
		IsActive:            state.IsActive,
		MonthlyTokenLimit:   state.MonthlyTokenLimit,
		TokensUsedThisMonth: state.TokensUsedThisMonth,
		MaxFiles:            state.MaxFiles,
		MaxThreads:          state.MaxThreads,
		VoiceEnabled:        state.VoiceEnabled,
		AdvancedFeatures:    state.AdvancedFeatures,
		SubscriptionStatus:  state.SubscriptionStatus,
	}
}

func stateToEntity(model *AccountStateModel) *entities.AccountState {
	return &entities.AccountState{
		ID:                  model.ID,
		Email:               model.Email,
		SubscriptionTier:    entities.Tier(model.SubscriptionTier),
		IsActive:            model.IsActive,
		MonthlyTokenLimit:   model.MonthlyTokenLimit,
		TokensUsedThisMonth: model.TokensUsedThisMonth,
		MaxFiles:            model.MaxFiles,
		MaxThreads:          model.MaxThreads,
		VoiceEnabled:        model.VoiceEnabled,
		AdvancedFeatures:    model.AdvancedFeatures,
		SubscriptionStatus:  model.SubscriptionStatus,
	}
}
