package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rafabene/userhub-backend/internal/domain/entities"
	"github.com/rafabene/userhub-backend/internal/domain/ports"
	"github.com/rafabene/userhub-backend/internal/domain/repositories"
)

// ActivityService registra e consulta o histórico de atividade
type ActivityService struct {
	activity repositories.ActivityRepository
	logger   ports.Logger
}

// NewActivityService cria um novo ActivityService
func NewActivityService(activity repositories.ActivityRepository, logger ports.Logger) *ActivityService {
	return &ActivityService{activity: activity, logger: logger}
}

// Log registra uma atividade de forma best-effort: falha de escrita vira
// warn no log e nunca quebra a operação que a originou.
func (s *ActivityService) Log(ctx context.Context, userID, activityType, description string, metadata map[string]string) {
	entry := newActivityEntry(userID, activityType, description, metadata)
	if err := s.activity.Insert(ctx, &entry); err != nil {
		s.logger.Warn("failed to record activity",
			"user_id", userID,
			"activity_type", activityType,
			"error", err,
		)
	}
}

// List retorna as atividades mais recentes do usuário (ordem decrescente)
func (s *ActivityService) List(ctx context.Context, userID string, limit int) ([]entities.ActivityLogEntry, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}
	return s.activity.ListByUser(ctx, userID, limit)
}

// newActivityEntry monta uma entrada nova com id e timestamp gerados aqui
func newActivityEntry(userID, activityType, description string, metadata map[string]string) entities.ActivityLogEntry {
	if metadata == nil {
		metadata = map[string]string{}
	}
	return entities.ActivityLogEntry{
		ID:           uuid.NewString(),
		UserID:       userID,
		ActivityType: activityType,
		Description:  description,
		Metadata:     metadata,
		CreatedAt:    time.Now().UTC(),
	}
}
