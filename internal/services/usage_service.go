package services

import (
	"context"

	"github.com/rafabene/userhub-backend/internal/domain/aggregation"
	"github.com/rafabene/userhub-backend/internal/domain/entities"
	"github.com/rafabene/userhub-backend/internal/domain/ports"
	"github.com/rafabene/userhub-backend/internal/domain/repositories"
)

// UsageService calcula as estatísticas de consumo de um usuário
type UsageService struct {
	usage   repositories.UsageRepository
	content repositories.ContentRepository
	states  repositories.AccountStateRepository
	logger  ports.Logger
}

// NewUsageService cria um novo UsageService
func NewUsageService(
	usage repositories.UsageRepository,
	content repositories.ContentRepository,
	states repositories.AccountStateRepository,
	logger ports.Logger,
) *UsageService {
	return &UsageService{usage: usage, content: content, states: states, logger: logger}
}

// UsageStats agrega o consumo de um usuário contra os limites do tier
type UsageStats struct {
	TotalTokens      int64
	TotalCost        float64
	TotalRequests    int
	ChatThreads      int64
	FileUploads      int64
	CustomAssistants int64

	MonthlyTokenLimit int64
	MaxFiles          int
	MaxThreads        int

	TokenUsagePercent  float64
	FileUsagePercent   float64
	ThreadUsagePercent float64
}

// GetUserUsage soma os registros de consumo e conta os objetos de conteúdo
// do usuário. Limites vêm do registro estendido (defaults de tier free
// quando ausente).
func (s *UsageService) GetUserUsage(ctx context.Context, userID string) (*UsageStats, error) {
	records, err := s.usage.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	threads, files, assistants, err := s.content.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	state, err := s.states.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		defaultState := entities.DefaultAccountState(userID, "")
		state = &defaultState
	}

	stats := &UsageStats{
		TotalRequests:     len(records),
		ChatThreads:       threads,
		FileUploads:       files,
		CustomAssistants:  assistants,
		MonthlyTokenLimit: state.MonthlyTokenLimit,
		MaxFiles:          state.MaxFiles,
		MaxThreads:        state.MaxThreads,
	}
	for _, record := range records {
		stats.TotalTokens += record.TotalTokens
		stats.TotalCost += record.Cost.Float64()
	}

	stats.TokenUsagePercent = aggregation.UsagePercent(stats.TotalTokens, state.MonthlyTokenLimit)
	stats.FileUsagePercent = aggregation.UsagePercent(files, int64(state.MaxFiles))
	stats.ThreadUsagePercent = aggregation.UsagePercent(threads, int64(state.MaxThreads))

	return stats, nil
}
