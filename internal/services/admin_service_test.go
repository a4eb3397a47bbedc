package services

import (
	"context"
	"errors"
	"testing"

	domainerrors "github.com/rafabene/userhub-backend/internal/domain/errors"

	"github.com/rafabene/userhub-backend/internal/domain/entities"
	"github.com/rafabene/userhub-backend/internal/domain/ports"
)

type adminFixture struct {
	service   *AdminService
	directory *fakeDirectory
	profiles  *fakeProfileRepo
	roles     *fakeRoleRepo
	states    *fakeStateRepo
	activity  *fakeActivityRepo
	usage     *fakeUsageRepo
	pending   *fakePendingRepo
	uow       *fakeUnitOfWork
}

func newAdminFixture() *adminFixture {
	f := &adminFixture{
		directory: &fakeDirectory{},
		profiles:  newFakeProfileRepo(),
		roles:     newFakeRoleRepo(),
		states:    newFakeStateRepo(),
		activity:  &fakeActivityRepo{},
		usage:     &fakeUsageRepo{},
		pending:   newFakePendingRepo(),
		uow:       &fakeUnitOfWork{},
	}
	f.service = NewAdminService(
		f.directory,
		f.profiles,
		f.roles,
		f.states,
		newFakePrefRepo(),
		f.activity,
		f.usage,
		&fakeContentRepo{},
		f.pending,
		f.uow,
		ports.NopLogger{},
	)
	return f
}

func TestAdminService_ListUsers(t *testing.T) {
	t.Run("agrega contas com defaults e dados das tabelas", func(t *testing.T) {
		f := newAdminFixture()
		f.directory.accounts = []entities.Account{
			{ID: "u1", Email: "u1@example.com"},
			{ID: "u2", Email: "u2@example.com"},
		}
		f.profiles.profiles["u1"] = entities.Profile{ID: "u1", Role: entities.RoleModerator, FullName: "Usuária Um"}
		f.usage.records = []entities.UsageRecord{{UserID: "u1", TotalTokens: 500, Cost: 1.5}}

		page, err := f.service.ListUsers(context.Background(), UserFilters{})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if page.TotalItems != 2 {
			t.Fatalf("esperava 2 usuários, obteve %d", page.TotalItems)
		}

		byID := map[string]int{}
		for i, v := range page.Users {
			byID[v.ID] = i
		}
		u1 := page.Users[byID["u1"]]
		if u1.Role != entities.RoleModerator || u1.TokensUsed != 500 {
			t.Errorf("u1 agregado incorretamente: role=%s tokens=%d", u1.Role, u1.TokensUsed)
		}
		u2 := page.Users[byID["u2"]]
		if u2.Role != entities.RoleUser || u2.SubscriptionTier != entities.TierFree {
			t.Errorf("u2 deveria ter defaults: role=%s tier=%s", u2.Role, u2.SubscriptionTier)
		}
	})

	t.Run("falha no diretório propaga erro", func(t *testing.T) {
		f := newAdminFixture()
		f.directory.err = errBoom

		if _, err := f.service.ListUsers(context.Background(), UserFilters{}); !errors.Is(err, errBoom) {
			t.Errorf("esperava errBoom, obteve %v", err)
		}
	})

	t.Run("falha em tabela opcional degrada para vazia", func(t *testing.T) {
		f := newAdminFixture()
		f.directory.accounts = []entities.Account{{ID: "u1", Email: "u1@example.com"}}
		f.usage.listErr = errBoom
		f.activity.listErr = errBoom

		page, err := f.service.ListUsers(context.Background(), UserFilters{})
		if err != nil {
			t.Fatalf("a listagem não pode abortar por tabela opcional: %v", err)
		}
		if page.Users[0].TokensUsed != 0 || page.Users[0].ActivityLogsCount != 0 {
			t.Error("tabela com falha deveria contar como vazia")
		}
	})

	t.Run("filtros de papel e busca", func(t *testing.T) {
		f := newAdminFixture()
		f.directory.accounts = []entities.Account{
			{ID: "u1", Email: "alice@example.com"},
			{ID: "u2", Email: "bob@example.com"},
		}
		f.roles.assignments["u1"] = entities.RoleAssignment{UserID: "u1", Role: entities.RoleAdmin}

		page, err := f.service.ListUsers(context.Background(), UserFilters{Role: "admin"})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if page.TotalItems != 1 || page.Users[0].ID != "u1" {
			t.Errorf("filtro de papel incorreto: %+v", page.Users)
		}

		page, err = f.service.ListUsers(context.Background(), UserFilters{Search: "BOB"})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if page.TotalItems != 1 || page.Users[0].ID != "u2" {
			t.Errorf("busca textual incorreta: %+v", page.Users)
		}
	})

	t.Run("paginação fatia e calcula totais", func(t *testing.T) {
		f := newAdminFixture()
		for i := 0; i < 25; i++ {
			f.directory.accounts = append(f.directory.accounts, entities.Account{
				ID:    string(rune('a' + i)),
				Email: string(rune('a'+i)) + "@example.com",
			})
		}

		page, err := f.service.ListUsers(context.Background(), UserFilters{Page: 3, PageSize: 10})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if page.TotalItems != 25 || page.TotalPages != 3 {
			t.Errorf("totais incorretos: items=%d pages=%d", page.TotalItems, page.TotalPages)
		}
		if len(page.Users) != 5 {
			t.Errorf("página 3 deveria ter 5 usuários, obteve %d", len(page.Users))
		}

		// Página além do fim volta vazia, sem pânico
		page, err = f.service.ListUsers(context.Background(), UserFilters{Page: 10, PageSize: 10})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if len(page.Users) != 0 {
			t.Errorf("página além do fim deveria ser vazia, obteve %d", len(page.Users))
		}
	})
}

func TestAdminService_Overview(t *testing.T) {
	f := newAdminFixture()
	f.directory.accounts = []entities.Account{
		{ID: "u1", Email: "u1@example.com"},
		{ID: "u2", Email: "u2@example.com"},
	}
	f.roles.assignments["u1"] = entities.RoleAssignment{UserID: "u1", Role: entities.RoleAdmin}
	f.states.states["u2"] = entities.AccountState{ID: "u2", SubscriptionTier: entities.TierFree, IsActive: false}
	f.pending.signups["u2@example.com"] = entities.PendingSignup{Email: "u2@example.com", Status: entities.SignupStatusPending}
	f.usage.records = []entities.UsageRecord{
		{UserID: "u1", TotalTokens: 100, Cost: 0.5},
		{UserID: "u2", TotalTokens: 200, Cost: 1.0},
	}

	ov, err := f.service.Overview(context.Background())
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if ov.TotalUsers != 2 || ov.ActiveUsers != 1 || ov.Admins != 1 || ov.PendingUsers != 1 {
		t.Errorf("contagens incorretas: %+v", ov)
	}
	if ov.TotalTokens != 300 || ov.TotalCost != 1.5 || ov.TotalRequests != 2 {
		t.Errorf("somas incorretas: %+v", ov)
	}
}

func TestAdminService_ApproveUser(t *testing.T) {
	t.Run("aprova cadastro pendente em transação", func(t *testing.T) {
		f := newAdminFixture()
		f.pending.signups["novo@example.com"] = entities.PendingSignup{
			UserID: "u9", Email: "novo@example.com", Status: entities.SignupStatusPending,
		}

		if err := f.service.ApproveUser(context.Background(), "admin-1", "u9", "novo@example.com"); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if got := f.pending.signups["novo@example.com"].Status; got != entities.SignupStatusApproved {
			t.Errorf("esperava status approved, obteve '%s'", got)
		}
		if !f.states.states["u9"].IsActive {
			t.Error("aprovação deveria ativar o registro estendido")
		}
		if f.uow.calls != 1 {
			t.Errorf("esperava 1 transação, obteve %d", f.uow.calls)
		}
		if len(f.activity.entries) != 1 || f.activity.entries[0].ActivityType != entities.ActivityAdminAction {
			t.Error("aprovação deveria registrar admin_action")
		}
	})

	t.Run("cadastro inexistente ou já decidido é rejeitado", func(t *testing.T) {
		f := newAdminFixture()

		err := f.service.ApproveUser(context.Background(), "admin-1", "u9", "nada@example.com")
		if !errors.Is(err, domainerrors.ErrSignupNotPending) {
			t.Errorf("esperava ErrSignupNotPending, obteve %v", err)
		}

		f.pending.signups["ja@example.com"] = entities.PendingSignup{
			Email: "ja@example.com", Status: entities.SignupStatusApproved,
		}
		err = f.service.ApproveUser(context.Background(), "admin-1", "u9", "ja@example.com")
		if !errors.Is(err, domainerrors.ErrSignupNotPending) {
			t.Errorf("esperava ErrSignupNotPending, obteve %v", err)
		}
	})
}

func TestAdminService_RejectUser(t *testing.T) {
	f := newAdminFixture()
	f.pending.signups["novo@example.com"] = entities.PendingSignup{
		UserID: "u9", Email: "novo@example.com", Status: entities.SignupStatusPending,
	}

	if err := f.service.RejectUser(context.Background(), "admin-1", "u9", "novo@example.com"); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if got := f.pending.signups["novo@example.com"].Status; got != entities.SignupStatusRejected {
		t.Errorf("esperava status rejected, obteve '%s'", got)
	}
	if f.states.states["u9"].IsActive {
		t.Error("rejeição deveria desativar o registro estendido")
	}
}

func TestAdminService_UpdateUserRole(t *testing.T) {
	t.Run("atualiza user_roles e espelha em profiles", func(t *testing.T) {
		f := newAdminFixture()
		f.profiles.profiles["u1"] = entities.Profile{ID: "u1", Role: entities.RoleUser}

		if err := f.service.UpdateUserRole(context.Background(), "admin-1", "u1", entities.RoleModerator); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if got := f.roles.assignments["u1"].Role; got != entities.RoleModerator {
			t.Errorf("esperava moderator em user_roles, obteve '%s'", got)
		}
		if got := f.profiles.profiles["u1"].Role; got != entities.RoleModerator {
			t.Errorf("esperava moderator espelhado no profile, obteve '%s'", got)
		}
		if f.uow.calls != 1 {
			t.Errorf("esperava 1 transação, obteve %d", f.uow.calls)
		}
	})

	t.Run("papel desconhecido é rejeitado", func(t *testing.T) {
		f := newAdminFixture()
		err := f.service.UpdateUserRole(context.Background(), "admin-1", "u1", entities.Role("root"))
		if !errors.Is(err, domainerrors.ErrInvalidRole) {
			t.Errorf("esperava ErrInvalidRole, obteve %v", err)
		}
	})
}
