package aggregation

import (
	"github.com/rafabene/userhub-backend/internal/domain/entities"
)

// Tables carrega o conjunto completo (já buscado, sem paginação) de cada
// tabela auxiliar. Tabelas que falharam no fetch chegam vazias; a
// agregação nunca aborta por relação ausente.
type Tables struct {
	Profiles       []entities.Profile
	Roles          []entities.RoleAssignment
	AccountStates  []entities.AccountState
	Preferences    []entities.Preference
	Activities     []entities.ActivityLogEntry
	Usage          []entities.UsageRecord
	Threads        []entities.ContentRef
	FileUploads    []entities.ContentRef
	Assistants     []entities.ContentRef
	PendingSignups []entities.PendingSignup
}

// recentActivityCount é quantas entradas de atividade a view retém
const recentActivityCount = 5

// Aggregate produz exatamente uma View por conta utilizável, combinando
// as tabelas auxiliares com defaults para relações ausentes.
//
// Os índices das tabelas single-valued e os agrupamentos das
// multi-valued são construídos uma única vez por chamada e reusados
// para todas as contas: tempo linear no total de registros, não
// O(contas × registros).
func Aggregate(accounts []entities.Account, tables Tables) []View {
	idx := buildIndexes(tables)

	views := make([]View, 0, len(accounts))
	for _, account := range accounts {
		if !account.IsUsable() {
			continue
		}
		views = append(views, combine(account, idx))
	}
	return views
}

type indexes struct {
	profileByID    map[string]entities.Profile
	roleByUser     map[string]entities.Role
	stateByID      map[string]entities.AccountState
	prefsByUser    map[string]entities.Preference
	activityByUser map[string][]entities.ActivityLogEntry
	usageByUser    map[string][]entities.UsageRecord
	threadCount    map[string]int
	fileCount      map[string]int
	assistantCount map[string]int
	pendingByEmail map[string]entities.PendingSignup
}

func buildIndexes(tables Tables) indexes {
	idx := indexes{
		profileByID:    make(map[string]entities.Profile, len(tables.Profiles)),
		roleByUser:     make(map[string]entities.Role, len(tables.Roles)),
		stateByID:      make(map[string]entities.AccountState, len(tables.AccountStates)),
		prefsByUser:    make(map[string]entities.Preference, len(tables.Preferences)),
		activityByUser: make(map[string][]entities.ActivityLogEntry),
		usageByUser:    make(map[string][]entities.UsageRecord),
		threadCount:    make(map[string]int),
		fileCount:      make(map[string]int),
		assistantCount: make(map[string]int),
		pendingByEmail: make(map[string]entities.PendingSignup, len(tables.PendingSignups)),
	}

	for _, p := range tables.Profiles {
		idx.profileByID[p.ID] = p
	}
	for _, r := range tables.Roles {
		idx.roleByUser[r.UserID] = r.Role
	}
	for _, s := range tables.AccountStates {
		idx.stateByID[s.ID] = s
	}
	for _, pref := range tables.Preferences {
		idx.prefsByUser[pref.UserID] = pref
	}
	for _, a := range tables.Activities {
		idx.activityByUser[a.UserID] = append(idx.activityByUser[a.UserID], a)
	}
	for _, u := range tables.Usage {
		idx.usageByUser[u.UserID] = append(idx.usageByUser[u.UserID], u)
	}
	for _, t := range tables.Threads {
		idx.threadCount[t.UserID]++
	}
	for _, f := range tables.FileUploads {
		idx.fileCount[f.UserID]++
	}
	for _, a := range tables.Assistants {
		idx.assistantCount[a.UserID]++
	}
	for _, ps := range tables.PendingSignups {
		idx.pendingByEmail[ps.Email] = ps
	}

	return idx
}

// combine monta a view de uma conta a partir dos índices pré-construídos
func combine(account entities.Account, idx indexes) View {
	profile := idx.profileByID[account.ID]

	state, hasState := idx.stateByID[account.ID]
	if !hasState {
		state = entities.DefaultAccountState(account.ID, account.Email)
	}

	prefs, hasPrefs := idx.prefsByUser[account.ID]
	if !hasPrefs {
		prefs = entities.DefaultPreference(account.ID)
	}

	activities := idx.activityByUser[account.ID]
	usage := idx.usageByUser[account.ID]

	var tokensUsed int64
	var totalCost float64
	for _, record := range usage {
		tokensUsed += record.TotalTokens
		totalCost += record.Cost.Float64()
	}

	pending, hasPending := idx.pendingByEmail[account.Email]

	return View{
		ID:               account.ID,
		Email:            account.Email,
		CreatedAt:        account.CreatedAt,
		EmailConfirmedAt: account.EmailConfirmedAt,
		LastSignInAt:     account.LastSignInAt,
		LastActive:       RecencyLabel(account.LastSignInAt),

		Role:      resolveRole(account.ID, profile, idx),
		FullName:  profile.FullName,
		AvatarURL: profile.AvatarURL,
		Website:   profile.Website,
		Username:  profile.Username,
		UpdatedAt: profile.UpdatedAt,

		IsActive:           state.IsActive,
		SubscriptionTier:   state.SubscriptionTier,
		MonthlyTokenLimit:  state.MonthlyTokenLimit,
		MaxFiles:           state.MaxFiles,
		MaxThreads:         state.MaxThreads,
		VoiceEnabled:       state.VoiceEnabled,
		AdvancedFeatures:   state.AdvancedFeatures,
		SubscriptionStatus: state.SubscriptionStatus,

		Theme:              prefs.Theme,
		Language:           prefs.Language,
		Notifications:      prefs.Notifications,
		EmailNotifications: prefs.EmailNotifications,

		TokensUsed: tokensUsed,
		TotalCost:  totalCost,

		ActivityLogsCount:     len(activities),
		APIRequests:           len(usage),
		ChatThreadsCount:      idx.threadCount[account.ID],
		FileUploadsCount:      idx.fileCount[account.ID],
		CustomAssistantsCount: idx.assistantCount[account.ID],

		RecentActivities: lastN(activities, recentActivityCount),
		PendingApproval:  hasPending && pending.IsPending(),
	}
}

// resolveRole aplica a precedência: user_roles > profiles.role > "user"
func resolveRole(accountID string, profile entities.Profile, idx indexes) entities.Role {
	if role, ok := idx.roleByUser[accountID]; ok && role != "" {
		return role
	}
	if profile.Role != "" {
		return profile.Role
	}
	return entities.RoleUser
}

// lastN retorna as últimas n entradas na ordem em que foram encontradas.
// Quem fornece as linhas é responsável pela ordem cronológica.
func lastN(entries []entities.ActivityLogEntry, n int) []entities.ActivityLogEntry {
	if len(entries) <= n {
		return entries
	}
	return entries[len(entries)-n:]
}
