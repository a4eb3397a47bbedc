package dto

import (
	"time"

	"github.com/rafabene/userhub-backend/internal/domain/entities"
	"github.com/rafabene/userhub-backend/internal/services"
)

// RegisterRequest é o corpo do cadastro de perfil pós-signup
type RegisterRequest struct {
	AccountID string `json:"account_id" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"max=255"`
	LastName  string `json:"last_name" binding:"max=255"`
}

// ToRegisterInput converte a requisição para o input do serviço
func (r *RegisterRequest) ToRegisterInput() services.RegisterInput {
	return services.RegisterInput{
		AccountID: r.AccountID,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// ProfileResponse é a representação HTTP de um perfil
type ProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Website   string    `json:"website,omitempty"`
	Username  string    `json:"username,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToProfileResponse converte a entidade de perfil
func ToProfileResponse(profile *entities.Profile) ProfileResponse {
	return ProfileResponse{
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

// UpdateProfileRequest atualiza apenas os campos presentes no corpo
type UpdateProfileRequest struct {
	FullName  *string `json:"full_name" binding:"omitempty,max=500"`
	Website   *string `json:"website" binding:"omitempty,max=500"`
	Username  *string `json:"username" binding:"omitempty,max=255"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,max=500"`
}

// ToUpdateProfileInput converte a requisição para o input do serviço
func (r *UpdateProfileRequest) ToUpdateProfileInput() services.UpdateProfileInput {
	return services.UpdateProfileInput{
		FullName:  r.FullName,
		Website:   r.Website,
		Username:  r.Username,
		AvatarURL: r.AvatarURL,
	}
}

// PreferencesRequest é o corpo do upsert de preferências
type PreferencesRequest struct {
	Theme              string `json:"theme" binding:"required,oneof=light dark"`
	Language           string `json:"language" binding:"required,min=2,max=10"`
	Notifications      bool   `json:"notifications"`
	EmailNotifications bool   `json:"email_notifications"`
}

// PreferencesResponse é a representação HTTP das preferências
type PreferencesResponse struct {
	Theme              string `json:"theme"`
	Language           string `json:"language"`
	Notifications      bool   `json:"notifications"`
	EmailNotifications bool   `json:"email_notifications"`
}

// ToPreferencesResponse converte a entidade de preferências
func ToPreferencesResponse(pref *entities.Preference) PreferencesResponse {
	return PreferencesResponse{
		Theme:              pref.Theme,
		Language:           pref.Language,
		Notifications:      pref.Notifications,
		EmailNotifications: pref.EmailNotifications,
	}
}

// ActivityLogRequest registra um evento de atividade do próprio usuário
type ActivityLogRequest struct {
	ActivityType string            `json:"activity_type" binding:"required,oneof=login profile_update settings_update signup"`
	Description  string            `json:"description" binding:"max=1000"`
	Metadata     map[string]string `json:"metadata"`
}

// UsageStatsResponse é o resumo de consumo de um usuário
type UsageStatsResponse struct {
	TotalTokens      int64   `json:"total_tokens"`
	TotalCost        float64 `json:"total_cost"`
	TotalRequests    int     `json:"total_requests"`
	ChatThreads      int64   `json:"chat_threads"`
	FileUploads      int64   `json:"file_uploads"`
	CustomAssistants int64   `json:"custom_assistants"`

	MonthlyTokenLimit int64 `json:"monthly_token_limit"`
	MaxFiles          int   `json:"max_files"`
	MaxThreads        int   `json:"max_threads"`

	TokenUsagePercent  float64 `json:"token_usage_percent"`
	FileUsagePercent   float64 `json:"file_usage_percent"`
	ThreadUsagePercent float64 `json:"thread_usage_percent"`
}

// ToUsageStatsResponse converte as estatísticas do serviço de consumo
func ToUsageStatsResponse(stats *services.UsageStats) UsageStatsResponse {
	return UsageStatsResponse{
		TotalTokens:      stats.TotalTokens,
		TotalCost:        stats.TotalCost,
		TotalRequests:    stats.TotalRequests,
		ChatThreads:      stats.ChatThreads,
		FileUploads:      stats.FileUploads,
		CustomAssistants: stats.CustomAssistants,

		MonthlyTokenLimit: stats.MonthlyTokenLimit,
		MaxFiles:          stats.MaxFiles,
		MaxThreads:        stats.MaxThreads,

		TokenUsagePercent:  stats.TokenUsagePercent,
		FileUsagePercent:   stats.FileUsagePercent,
		ThreadUsagePercent: stats.ThreadUsagePercent,
	}
}
