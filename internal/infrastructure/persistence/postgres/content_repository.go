package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/userhub-backend/internal/domain/entities"
	"github.com/rafabene/userhub-backend/internal/domain/repositories"
)

// ContentRepository implementa repositories.ContentRepository sobre as
// três tabelas de conteúdo (chat_threads, file_uploads, custom_assistants)
type ContentRepository struct {
	db *gorm.DB
}

// NewContentRepository cria um novo ContentRepository
func NewContentRepository(db *gorm.DB) repositories.ContentRepository {
	return &ContentRepository{db: db}
}

func (r *ContentRepository) ListThreads(ctx context.Context) ([]entities.ContentRef, error) {
	var models []ChatThreadModel
	if err := getDB(ctx, r.db).Find(&models).Error; err != nil {
		return nil, err
	}

	refs := make([]entities.ContentRef, 0, len(models))
	for _, m := range models {
		refs = append(refs, entities.ContentRef{ID: m.ID, UserID: m.UserID})
	}
	return refs, nil
}

func (r *ContentRepository) ListFileUploads(ctx context.Context) ([]entities.ContentRef, error) {
	var models []FileUploadModel
	if err := getDB(ctx, r.db).Find(&models).Error; err != nil {
		return nil, err
	}

	refs := make([]entities.ContentRef, 0, len(models))
	for _, m := range models {
		refs = append(refs, entities.ContentRef{ID: m.ID, UserID: m.UserID})
	}
	return refs, nil
}

func (r *ContentRepository) ListAssistants(ctx context.Context) ([]entities.ContentRef, error) {
	var models []AssistantModel
	if err := getDB(ctx, r.db).Find(&models).Error; err != nil {
		return nil, err
	}

	refs := make([]entities.ContentRef, 0, len(models))
	for _, m := range models {
		refs = append(refs, entities.ContentRef{ID: m.ID, UserID: m.UserID})
	}
	return refs, nil
}

func (r *ContentRepository) CountByUser(ctx context.Context, userID string) (threads, files, assistants int64, err error) {
	db := getDB(ctx, r.db)

	if err = db.Model(&ChatThreadModel{}).Where("user_id = ?", userID).Count(&threads).Error; err != nil {
		return 0, 0, 0, err
	}
	if err = db.Model(&FileUploadModel{}).Where("user_id = ?", userID).Count(&files).Error; err != nil {
		return 0, 0, 0, err
	}
	if err = db.Model(&AssistantModel{}).Where("user_id = ?", userID).Count(&assistants).Error; err != nil {
		return 0, 0, 0, err
	}

	return threads, files, assistants, nil
}
