package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/userhub-backend/internal/domain/entities"
	"github.com/rafabene/userhub-backend/internal/domain/repositories"
)

// RoleRepository implementa repositories.RoleRepository
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository cria um novo RoleRepository
func NewRoleRepository(db *gorm.DB) repositories.RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) FindByUserID(ctx context.Context, userID string) (*entities.RoleAssignment, error) {
	var model RoleModel

	if err := getDB(ctx, r.db).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entities.RoleAssignment{UserID: model.UserID, Role: entities.Role(model.Role)}, nil
}

func (r *RoleRepository) Upsert(ctx context.Context, assignment entities.RoleAssignment) error {
	model := RoleModel{
		UserID: assignment.UserID,
		Role:   string(assignment.Role),
	}

	return getDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at"}),
	}).Create(&model).Error
}

func (r *RoleRepository) ListAll(ctx context.Context) ([]entities.RoleAssignment, error) {
	var models []RoleModel

	if err := getDB(ctx, r.db).Find(&models).Error; err != nil {
		return nil, err
	}

	assignments := make([]entities.RoleAssignment, 0, len(models))
	for _, m := range models {
		assignments = append(assignments, entities.RoleAssignment{
			UserID: m.UserID,
			Role:   entities.Role(m.Role),
		})
	}
	return assignments, nil
}
