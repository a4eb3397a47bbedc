package entities

import "time"

// Tipos de atividade rastreados (subset do catálogo do painel)
const (
	ActivityLogin          = "login"
	ActivityProfileUpdate  = "profile_update"
	ActivitySettingsUpdate = "settings_update"
	ActivityAdminAction    = "admin_action"
	ActivitySignup         = "signup"
)

// ActivityLogEntry é um evento do histórico de atividade do usuário.
// Zero-ou-muitos por conta, ordenados por CreatedAt ascendente no storage.
type ActivityLogEntry struct {
	ID           string            `json:"id"`
	UserID       string            `json:"user_id"`
	ActivityType string            `json:"activity_type"`
	Description  string            `json:"description"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}
