package entities

// Tier representa o nível de assinatura
type Tier string

const (
	TierFree       Tier = "free"
	TierPro        Tier = "pro"
	TierEnterprise Tier = "enterprise"
)

// AccountState é o registro estendido da conta (tabela "users"):
// assinatura, limites e flags de funcionalidades. Zero-ou-um por conta;
// todos os campos têm default quando ausente.
type AccountState struct {
	ID                  string
	Email               string
	SubscriptionTier    Tier
	IsActive            bool
	MonthlyTokenLimit   int64
	TokensUsedThisMonth int64
	MaxFiles            int
	MaxThreads          int
	VoiceEnabled        bool
	AdvancedFeatures    bool
	SubscriptionStatus  string
}

// DefaultAccountState retorna o estado padrão de uma conta sem registro
// estendido (tier free, ativa).
func DefaultAccountState(id, email string) AccountState {
	limits := LimitsForTier(TierFree)
	return AccountState{
		ID:                 id,
		Email:              email,
		SubscriptionTier:   TierFree,
		IsActive:           true,
		MonthlyTokenLimit:  limits.MonthlyTokens,
		MaxFiles:           limits.MaxFiles,
		MaxThreads:         limits.MaxThreads,
		SubscriptionStatus: "active",
	}
}

// TierLimits agrupa os limites numéricos de um tier de assinatura
type TierLimits struct {
	MonthlyTokens int64
	MaxFiles      int
	MaxThreads    int
	MaxAssistants int
}

var tierLimits = map[Tier]TierLimits{
	TierFree:       {MonthlyTokens: 10000, MaxFiles: 5, MaxThreads: 10, MaxAssistants: 2},
	TierPro:        {MonthlyTokens: 100000, MaxFiles: 50, MaxThreads: 100, MaxAssistants: 10},
	TierEnterprise: {MonthlyTokens: 1000000, MaxFiles: 500, MaxThreads: 1000, MaxAssistants: 50},
}

// LimitsForTier retorna os limites do tier; tiers desconhecidos caem no free
func LimitsForTier(tier Tier) TierLimits {
	if limits, ok := tierLimits[tier]; ok {
		return limits
	}
	return tierLimits[TierFree]
}
