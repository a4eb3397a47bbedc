package postgres

import "time"

// ProfileModel é o model GORM da tabela profiles
type ProfileModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName  string `gorm:"type:varchar(500)"`
	FirstName string `gorm:"type:varchar(255)"`
	LastName  string `gorm:"type:varchar(255)"`
	AvatarURL string `gorm:"type:varchar(500)"`
	Website   string `gorm:"type:varchar(500)"`
	Username  string `gorm:"type:varchar(255)"`
	Role      string `gorm:"type:varchar(50);index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProfileModel) TableName() string {
	return "profiles"
}

// RoleModel é o model GORM da tabela user_roles
type RoleModel struct {
	UserID    string `gorm:"type:uuid;primary_key"`
	Role      string `gorm:"type:varchar(50);not null"`
	UpdatedAt time.Time
}

func (RoleModel) TableName() string {
	return "user_roles"
}

// AccountStateModel é o model GORM da tabela users (registro estendido)
type AccountStateModel struct {
	ID                  string `gorm:"type:uuid;primary_key"`
	Email               string `gorm:"type:varchar(255);index"`
	SubscriptionTier    string `gorm:"type:varchar(50)"`
	IsActive            bool
	MonthlyTokenLimit   int64
	TokensUsedThisMonth int64
	MaxFiles            int
	MaxThreads          int
	VoiceEnabled        bool
	AdvancedFeatures    bool
	SubscriptionStatus  string `gorm:"type:varchar(50)"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (AccountStateModel) TableName() string {
	return "users"
}

// PreferenceModel é o model GORM da tabela user_preferences
type PreferenceModel struct {
	UserID             string `gorm:"type:uuid;primary_key"`
	Theme              string `gorm:"type:varchar(50)"`
	Language           string `gorm:"type:varchar(10)"`
	Notifications      bool
	EmailNotifications bool
	UpdatedAt          time.Time
}

func (PreferenceModel) TableName() string {
	return "user_preferences"
}

// ActivityLogModel é o model GORM da tabela user_activity_logs.
// Metadata é JSON serializado; o banco só precisa devolver o blob.
type ActivityLogModel struct {
	ID           string    `gorm:"type:uuid;primary_key"`
	UserID       string    `gorm:"type:uuid;index;not null"`
	ActivityType string    `gorm:"type:varchar(50);not null"`
	Description  string    `gorm:"type:text"`
	Metadata     string    `gorm:"type:jsonb"`
	CreatedAt    time.Time `gorm:"index"`
}

func (ActivityLogModel) TableName() string {
	return "user_activity_logs"
}

// UsageModel é o model GORM da tabela api_usage
type UsageModel struct {
	ID          string `gorm:"type:uuid;primary_key"`
	UserID      string `gorm:"type:uuid;index;not null"`
	TotalTokens int64
	Cost        float64
	CreatedAt   time.Time
}

func (UsageModel) TableName() string {
	return "api_usage"
}

// ChatThreadModel é o model GORM da tabela chat_threads
type ChatThreadModel struct {
	ID     string `gorm:"type:uuid;primary_key"`
	UserID string `gorm:"type:uuid;index;not null"`
}

func (ChatThreadModel) TableName() string {
	return "chat_threads"
}

// FileUploadModel é o model GORM da tabela file_uploads
type FileUploadModel struct {
	ID     string `gorm:"type:uuid;primary_key"`
	UserID string `gorm:"type:uuid;index;not null"`
}

func (FileUploadModel) TableName() string {
	return "file_uploads"
}

// AssistantModel é o model GORM da tabela custom_assistants
type AssistantModel struct {
	ID     string `gorm:"type:uuid;primary_key"`
	UserID string `gorm:"type:uuid;index;not null"`
}

func (AssistantModel) TableName() string {
	return "custom_assistants"
}

// PendingSignupModel é o model GORM da tabela pending_signups
type PendingSignupModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	UserID    string `gorm:"type:uuid;index"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Status    string `gorm:"type:varchar(50);not null;index"`
	CreatedAt time.Time
}

func (PendingSignupModel) TableName() string {
	return "pending_signups"
}
