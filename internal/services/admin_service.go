package services

import (
	"context"
	"strings"
	"sync"

	"github.com/rafabene/userhub-backend/internal/domain/aggregation"
	"github.com/rafabene/userhub-backend/internal/domain/entities"
	"github.com/rafabene/userhub-backend/internal/domain/errors"
	"github.com/rafabene/userhub-backend/internal/domain/ports"
	"github.com/rafabene/userhub-backend/internal/domain/repositories"
)

// AdminService concentra as operações do painel administrativo:
// listagem agregada de usuários, aprovação de cadastros e troca de papel.
type AdminService struct {
	directory ports.AccountDirectory
	profiles  repositories.ProfileRepository
	roles     repositories.RoleRepository
	states    repositories.AccountStateRepository
	prefs     repositories.PreferenceRepository
	activity  repositories.ActivityRepository
	usage     repositories.UsageRepository
	content   repositories.ContentRepository
	pending   repositories.PendingSignupRepository
	uow       ports.UnitOfWork
	logger    ports.Logger
}

// NewAdminService cria um novo AdminService
func NewAdminService(
	directory ports.AccountDirectory,
	profiles repositories.ProfileRepository,
	roles repositories.RoleRepository,
	states repositories.AccountStateRepository,
	prefs repositories.PreferenceRepository,
	activity repositories.ActivityRepository,
	usage repositories.UsageRepository,
	content repositories.ContentRepository,
	pending repositories.PendingSignupRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *AdminService {
	return &AdminService{
		directory: directory,
		profiles:  profiles,
		roles:     roles,
		states:    states,
		prefs:     prefs,
		activity:  activity,
		usage:     usage,
		content:   content,
		pending:   pending,
		uow:       uow,
		logger:    logger,
	}
}

// UserFilters contém os filtros da listagem administrativa
type UserFilters struct {
	Role     string // "", "user", "moderator", "admin"
	Status   string // "", "active", "inactive"
	Tier     string // "", "free", "pro", "enterprise"
	Search   string // busca em email, nome completo e username
	Page     int    // começa em 1
	PageSize int    // default 10, max 100
}

// UserPage é uma página da listagem agregada
type UserPage struct {
	Users      []aggregation.View
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
}

// ListUsers monta a listagem completa do painel: busca as contas no
// provedor, faz fan-out dos fetches por tabela, agrega, filtra e pagina.
func (s *AdminService) ListUsers(ctx context.Context, filters UserFilters) (*UserPage, error) {
	views, err := s.aggregateAll(ctx)
	if err != nil {
		return nil, err
	}

	views = applyFilters(views, filters)
	return paginate(views, filters.Page, filters.PageSize), nil
}

// aggregateAll produz a projeção completa, sem filtros nem paginação.
// A lista de contas é obrigatória; as tabelas auxiliares são opcionais.
func (s *AdminService) aggregateAll(ctx context.Context) ([]aggregation.View, error) {
	accounts, err := s.directory.ListAccounts(ctx)
	if err != nil {
		s.logger.Error("failed to list accounts from auth provider", "error", err)
		return nil, err
	}

	tables := s.fetchTables(ctx)
	return aggregation.Aggregate(accounts, tables), nil
}

// Overview agrega os totais exibidos no topo do painel
type Overview struct {
	TotalUsers    int
	ActiveUsers   int
	Admins        int
	PendingUsers  int
	TotalTokens   int64
	TotalCost     float64
	TotalThreads  int
	TotalFiles    int
	TotalRequests int
}

// Overview calcula as estatísticas do sistema para o painel admin
func (s *AdminService) Overview(ctx context.Context) (*Overview, error) {
	views, err := s.aggregateAll(ctx)
	if err != nil {
		return nil, err
	}

	ov := &Overview{TotalUsers: len(views)}
	for _, v := range views {
		if v.IsActive {
			ov.ActiveUsers++
		}
		if v.Role == entities.RoleAdmin {
			ov.Admins++
		}
		if v.PendingApproval {
			ov.PendingUsers++
		}
		ov.TotalTokens += v.TokensUsed
		ov.TotalCost += v.TotalCost
		ov.TotalThreads += v.ChatThreadsCount
		ov.TotalFiles += v.FileUploadsCount
		ov.TotalRequests += v.APIRequests
	}
	return ov, nil
}

// ApproveUser aprova um cadastro pendente: muda o status do pending_signup
// e reativa o registro estendido na mesma transação.
func (s *AdminService) ApproveUser(ctx context.Context, actorID, userID, email string) error {
	return s.decideSignup(ctx, actorID, userID, email, entities.SignupStatusApproved, true)
}

// RejectUser rejeita um cadastro pendente e desativa o registro estendido
func (s *AdminService) RejectUser(ctx context.Context, actorID, userID, email string) error {
	return s.decideSignup(ctx, actorID, userID, email, entities.SignupStatusRejected, false)
}

func (s *AdminService) decideSignup(ctx context.Context, actorID, userID, email, status string, active bool) error {
	signup, err := s.pending.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if signup == nil || !signup.IsPending() {
		return errors.ErrSignupNotPending
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.pending.UpdateStatusByEmail(txCtx, email, status); err != nil {
			return err
		}
		return s.states.SetActive(txCtx, userID, active)
	})
	if err != nil {
		return err
	}

	s.logger.Info("signup decided", "user_id", userID, "email", email, "status", status)
	s.logAdminAction(ctx, actorID, "signup "+status+" for "+email, userID)
	return nil
}

// UpdateUserRole troca o papel de um usuário: upsert em user_roles e
// espelho em profiles.role, como o painel espera encontrar nos dois lugares.
func (s *AdminService) UpdateUserRole(ctx context.Context, actorID, userID string, role entities.Role) error {
	if !role.IsValid() {
		return errors.ErrInvalidRole
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.roles.Upsert(txCtx, entities.RoleAssignment{UserID: userID, Role: role}); err != nil {
			return err
		}
		return s.profiles.Update(txCtx, userID, map[string]any{"role": string(role)})
	})
	if err != nil {
		return err
	}

	s.logger.Info("user role updated", "user_id", userID, "role", role)
	s.logAdminAction(ctx, actorID, "role changed to "+string(role), userID)
	return nil
}

// fetchTables dispara os fetches de todas as tabelas auxiliares em
// paralelo. São leituras independentes sem requisito de ordem; falha em
// tabela opcional degrada para vazia via TableResult.OrEmpty.
func (s *AdminService) fetchTables(ctx context.Context) aggregation.Tables {
	var (
		wg             sync.WaitGroup
		profiles       aggregation.TableResult[entities.Profile]
		roles          aggregation.TableResult[entities.RoleAssignment]
		states         aggregation.TableResult[entities.AccountState]
		prefs          aggregation.TableResult[entities.Preference]
		activities     aggregation.TableResult[entities.ActivityLogEntry]
		usage          aggregation.TableResult[entities.UsageRecord]
		threads        aggregation.TableResult[entities.ContentRef]
		files          aggregation.TableResult[entities.ContentRef]
		assistants     aggregation.TableResult[entities.ContentRef]
		pendingSignups aggregation.TableResult[entities.PendingSignup]
	)

	run := func(fetch func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fetch()
		}()
	}

	run(func() { profiles = aggregation.FetchResult(s.profiles.ListAll(ctx)) })
	run(func() { roles = aggregation.FetchResult(s.roles.ListAll(ctx)) })
	run(func() { states = aggregation.FetchResult(s.states.ListAll(ctx)) })
	run(func() { prefs = aggregation.FetchResult(s.prefs.ListAll(ctx)) })
	run(func() { activities = aggregation.FetchResult(s.activity.ListAll(ctx)) })
	run(func() { usage = aggregation.FetchResult(s.usage.ListAll(ctx)) })
	run(func() { threads = aggregation.FetchResult(s.content.ListThreads(ctx)) })
	run(func() { files = aggregation.FetchResult(s.content.ListFileUploads(ctx)) })
	run(func() { assistants = aggregation.FetchResult(s.content.ListAssistants(ctx)) })
	run(func() { pendingSignups = aggregation.FetchResult(s.pending.ListAll(ctx)) })
	wg.Wait()

	return aggregation.Tables{
		Profiles:       profiles.OrEmpty(s.logger, "profiles"),
		Roles:          roles.OrEmpty(s.logger, "user_roles"),
		AccountStates:  states.OrEmpty(s.logger, "users"),
		Preferences:    prefs.OrEmpty(s.logger, "user_preferences"),
		Activities:     activities.OrEmpty(s.logger, "user_activity_logs"),
		Usage:          usage.OrEmpty(s.logger, "api_usage"),
		Threads:        threads.OrEmpty(s.logger, "chat_threads"),
		FileUploads:    files.OrEmpty(s.logger, "file_uploads"),
		Assistants:     assistants.OrEmpty(s.logger, "custom_assistants"),
		PendingSignups: pendingSignups.OrEmpty(s.logger, "pending_signups"),
	}
}

// logAdminAction registra a ação administrativa de forma best-effort
func (s *AdminService) logAdminAction(ctx context.Context, actorID, description, targetID string) {
	if s.activity == nil || actorID == "" {
		return
	}
	entry := newActivityEntry(actorID, entities.ActivityAdminAction, description,
		map[string]string{"target_user_id": targetID})
	if err := s.activity.Insert(ctx, &entry); err != nil {
		s.logger.Warn("failed to record admin action", "error", err)
	}
}

// applyFilters aplica role, status, tier e busca textual sobre as views
func applyFilters(views []aggregation.View, filters UserFilters) []aggregation.View {
	filtered := make([]aggregation.View, 0, len(views))

	search := strings.ToLower(strings.TrimSpace(filters.Search))
	for _, v := range views {
		if filters.Role != "" && string(v.Role) != filters.Role {
			continue
		}
		if filters.Status == "active" && !v.IsActive {
			continue
		}
		if filters.Status == "inactive" && v.IsActive {
			continue
		}
		if filters.Tier != "" && string(v.SubscriptionTier) != filters.Tier {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(v.Email), search) &&
			!strings.Contains(strings.ToLower(v.FullName), search) &&
			!strings.Contains(strings.ToLower(v.Username), search) {
			continue
		}
		filtered = append(filtered, v)
	}
	return filtered
}

// paginate fatia as views em páginas com metadados de navegação
func paginate(views []aggregation.View, page, pageSize int) *UserPage {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}

	total := len(views)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := min(start+pageSize, total)

	return &UserPage{
		Users:      views[start:end],
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
