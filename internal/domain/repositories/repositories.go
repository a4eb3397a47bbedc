package repositories

import (
	"context"

	"github.com/rafabene/userhub-backend/internal/domain/entities"
)

// ProfileRepository define a persistência de perfis
type ProfileRepository interface {
	Create(ctx context.Context, profile *entities.Profile) error
	FindByID(ctx context.Context, id string) (*entities.Profile, error)
	FindByEmail(ctx context.Context, email string) (*entities.Profile, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	ListAll(ctx context.Context) ([]entities.Profile, error)
}

// RoleRepository define a persistência de atribuições de papel (user_roles)
type RoleRepository interface {
	FindByUserID(ctx context.Context, userID string) (*entities.RoleAssignment, error)
	Upsert(ctx context.Context, assignment entities.RoleAssignment) error
	ListAll(ctx context.Context) ([]entities.RoleAssignment, error)
}

// AccountStateRepository define a persistência do registro estendido (tabela users)
type AccountStateRepository interface {
	Create(ctx context.Context, state *entities.AccountState) error
	FindByID(ctx context.Context, id string) (*entities.AccountState, error)
	SetActive(ctx context.Context, id string, active bool) error
	ListAll(ctx context.Context) ([]entities.AccountState, error)
}

// PreferenceRepository define a persistência de preferências
type PreferenceRepository interface {
	FindByUserID(ctx context.Context, userID string) (*entities.Preference, error)
	Upsert(ctx context.Context, pref entities.Preference) error
	ListAll(ctx context.Context) ([]entities.Preference, error)
}

// ActivityRepository define a persistência do histórico de atividade
type ActivityRepository interface {
	Insert(ctx context.Context, entry *entities.ActivityLogEntry) error
	ListByUser(ctx context.Context, userID string, limit int) ([]entities.ActivityLogEntry, error)
	ListAll(ctx context.Context) ([]entities.ActivityLogEntry, error)
}

// UsageRepository define a persistência de registros de consumo de API
type UsageRepository interface {
	ListByUser(ctx context.Context, userID string) ([]entities.UsageRecord, error)
	ListAll(ctx context.Context) ([]entities.UsageRecord, error)
}

// ContentRepository expõe as três coleções de conteúdo contadas por usuário
type ContentRepository interface {
	ListThreads(ctx context.Context) ([]entities.ContentRef, error)
	ListFileUploads(ctx context.Context) ([]entities.ContentRef, error)
	ListAssistants(ctx context.Context) ([]entities.ContentRef, error)
	CountByUser(ctx context.Context, userID string) (threads, files, assistants int64, err error)
}

// PendingSignupRepository define a persistência de cadastros pendentes
type PendingSignupRepository interface {
	Create(ctx context.Context, signup *entities.PendingSignup) error
	FindByEmail(ctx context.Context, email string) (*entities.PendingSignup, error)
	UpdateStatusByEmail(ctx context.Context, email, status string) error
	ListAll(ctx context.Context) ([]entities.PendingSignup, error)
}
