package aggregation

import (
	"time"

	"github.com/rafabene/userhub-backend/internal/domain/entities"
)

// View é a projeção desnormalizada de uma conta sobre todas as tabelas
// auxiliares, com defaults preenchidos e métricas derivadas. É calculada
// sob demanda para a listagem administrativa e nunca persistida.
type View struct {
	ID               string
	Email            string
	CreatedAt        string
	EmailConfirmedAt string
	LastSignInAt     string
	LastActive       string // rótulo de recência calculado de LastSignInAt

	Role      entities.Role
	FullName  string
	AvatarURL string
	Website   string
	Username  string
	UpdatedAt time.Time

	IsActive           bool
	SubscriptionTier   entities.Tier
	MonthlyTokenLimit  int64
	MaxFiles           int
	MaxThreads         int
	VoiceEnabled       bool
	AdvancedFeatures   bool
	SubscriptionStatus string

	Theme              string
	Language           string
	Notifications      bool
	EmailNotifications bool

	TokensUsed int64
	TotalCost  float64

	ActivityLogsCount     int
	APIRequests           int
	ChatThreadsCount      int
	FileUploadsCount      int
	CustomAssistantsCount int

	RecentActivities []entities.ActivityLogEntry
	PendingApproval  bool
}

// Pesos da pontuação de engajamento, com teto parcial para atividade e
// tokens e bônus por tier de assinatura.
const (
	activityWeight    = 2
	activityScoreCap  = 50
	tokensPerPoint    = 1000
	tokensScoreCap    = 30
	threadWeight      = 5
	fileWeight        = 3
	assistantWeight   = 10
	proTierBonus      = 20
	enterpriseBonus   = 50
	engagementMaximum = 100
)

// EngagementScore resume a atividade do usuário em um inteiro [0,100]
func (v *View) EngagementScore() int {
	score := 0

	score += min(v.ActivityLogsCount*activityWeight, activityScoreCap)
	score += min(int(v.TokensUsed/tokensPerPoint), tokensScoreCap)
	score += v.ChatThreadsCount * threadWeight
	score += v.FileUploadsCount * fileWeight
	score += v.CustomAssistantsCount * assistantWeight

	switch v.SubscriptionTier {
	case entities.TierPro:
		score += proTierBonus
	case entities.TierEnterprise:
		score += enterpriseBonus
	}

	return min(score, engagementMaximum)
}

// UsagePercent calcula a porcentagem de tokens usados contra o limite mensal
func (v *View) UsagePercent() float64 {
	return UsagePercent(v.TokensUsed, v.MonthlyTokenLimit)
}
