package dto

import (
	"github.com/rafabene/userhub-backend/internal/domain/aggregation"
	"github.com/rafabene/userhub-backend/internal/domain/entities"
	"github.com/rafabene/userhub-backend/internal/services"
)

// AdminUserResponse é a linha da listagem administrativa de usuários
type AdminUserResponse struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	CreatedAt        string `json:"created_at"`
	EmailConfirmedAt string `json:"email_confirmed_at,omitempty"`
	LastSignInAt     string `json:"last_sign_in_at,omitempty"`
	LastActive       string `json:"last_active"`

	Role      string `json:"role"`
	FullName  string `json:"full_name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Website   string `json:"website,omitempty"`
	Username  string `json:"username,omitempty"`

	IsActive           bool   `json:"is_active"`
	SubscriptionTier   string `json:"subscription_tier"`
	SubscriptionStatus string `json:"subscription_status"`
	MonthlyTokenLimit  int64  `json:"monthly_token_limit"`
	MaxFiles           int    `json:"max_files"`
	MaxThreads         int    `json:"max_threads"`
	VoiceEnabled       bool   `json:"voice_enabled"`
	AdvancedFeatures   bool   `json:"advanced_features"`

	Theme              string `json:"theme"`
	Language           string `json:"language"`
	Notifications      bool   `json:"notifications"`
	EmailNotifications bool   `json:"email_notifications"`

	TokensUsed int64   `json:"tokens_used"`
	TotalCost  float64 `json:"total_cost"`

	ActivityLogsCount     int `json:"activity_logs_count"`
	APIRequests           int `json:"api_requests"`
	ChatThreadsCount      int `json:"chat_threads_count"`
	FileUploadsCount      int `json:"file_uploads_count"`
	CustomAssistantsCount int `json:"custom_assistants_count"`

	EngagementScore int     `json:"engagement_score"`
	UsagePercent    float64 `json:"usage_percent"`
	PendingApproval bool    `json:"pending_approval"`

	RecentActivities []entities.ActivityLogEntry `json:"recent_activities,omitempty"`
}

// ToAdminUserResponse converte a projeção agregada em resposta HTTP
func ToAdminUserResponse(v *aggregation.View) AdminUserResponse {
	return AdminUserResponse{
		ID:               v.ID,
		Email:            v.Email,
		CreatedAt:        v.CreatedAt,
		EmailConfirmedAt: v.EmailConfirmedAt,
		LastSignInAt:     v.LastSignInAt,
		LastActive:       v.LastActive,

		Role:      string(v.Role),
		FullName:  v.FullName,
		AvatarURL: v.AvatarURL,
		Website:   v.Website,
		Username:  v.Username,

		IsActive:           v.IsActive,
		SubscriptionTier:   string(v.SubscriptionTier),
		SubscriptionStatus: v.SubscriptionStatus,
		MonthlyTokenLimit:  v.MonthlyTokenLimit,
		MaxFiles:           v.MaxFiles,
		MaxThreads:         v.MaxThreads,
		VoiceEnabled:       v.VoiceEnabled,
		AdvancedFeatures:   v.AdvancedFeatures,

		Theme:              v.Theme,
		Language:           v.Language,
		Notifications:      v.Notifications,
		EmailNotifications: v.EmailNotifications,

		TokensUsed: v.TokensUsed,
		TotalCost:  v.TotalCost,

		ActivityLogsCount:     v.ActivityLogsCount,
		APIRequests:           v.APIRequests,
		ChatThreadsCount:      v.ChatThreadsCount,
		FileUploadsCount:      v.FileUploadsCount,
		CustomAssistantsCount: v.CustomAssistantsCount,

		EngagementScore: v.EngagementScore(),
		UsagePercent:    v.UsagePercent(),
		PendingApproval: v.PendingApproval,

		RecentActivities: v.RecentActivities,
	}
}

// PaginatedUsersResponse é a página da listagem administrativa
type PaginatedUsersResponse struct {
	Users      []AdminUserResponse `json:"users"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalItems int                 `json:"total_items"`
	TotalPages int                 `json:"total_pages"`
}

// ToPaginatedUsersResponse converte uma página do serviço admin
func ToPaginatedUsersResponse(page *services.UserPage) PaginatedUsersResponse {
	users := make([]AdminUserResponse, 0, len(page.Users))
	for i := range page.Users {
		users = append(users, ToAdminUserResponse(&page.Users[i]))
	}

	return PaginatedUsersResponse{
		Users:      users,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}
}

// OverviewResponse são as estatísticas do painel
type OverviewResponse struct {
	TotalUsers    int     `json:"total_users"`
	ActiveUsers   int     `json:"active_users"`
	Admins        int     `json:"admins"`
	PendingUsers  int     `json:"pending_users"`
	TotalTokens   int64   `json:"total_tokens"`
	TotalCost     float64 `json:"total_cost"`
	TotalThreads  int     `json:"total_threads"`
	TotalFiles    int     `json:"total_files"`
	TotalRequests int     `json:"total_requests"`
}

// ToOverviewResponse converte o overview do serviço admin
func ToOverviewResponse(ov *services.Overview) OverviewResponse {
	return OverviewResponse{
		TotalUsers:    ov.TotalUsers,
		ActiveUsers:   ov.ActiveUsers,
		Admins:        ov.Admins,
		PendingUsers:  ov.PendingUsers,
		TotalTokens:   ov.TotalTokens,
		TotalCost:     ov.TotalCost,
		TotalThreads:  ov.TotalThreads,
		TotalFiles:    ov.TotalFiles,
		TotalRequests: ov.TotalRequests,
	}
}

// RoleUpdateRequest é o corpo do endpoint de mudança de papel
type RoleUpdateRequest struct {
	Role string `json:"role" binding:"required,oneof=user moderator admin"`
}

// SignupDecisionRequest carrega o email do cadastro pendente sendo
// decidido (o id do usuário vem da rota)
type SignupDecisionRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// MessageResponse é uma confirmação simples traduzida
type MessageResponse struct {
	Message string `json:"message"`
}
