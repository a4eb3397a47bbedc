package services

import (
	"context"
	"errors"
	"testing"

	domainerrors "github.com/rafabene/userhub-backend/internal/domain/errors"

	"github.com/rafabene/userhub-backend/internal/domain/entities"
	"github.com/rafabene/userhub-backend/internal/domain/ports"
)

type signupFixture struct {
	service  *SignupService
	profiles *fakeProfileRepo
	prefs    *fakePrefRepo
	states   *fakeStateRepo
	pending  *fakePendingRepo
	uow      *fakeUnitOfWork
}

func newSignupFixture(requireApproval bool) *signupFixture {
	f := &signupFixture{
		profiles: newFakeProfileRepo(),
		prefs:    newFakePrefRepo(),
		states:   newFakeStateRepo(),
		pending:  newFakePendingRepo(),
		uow:      &fakeUnitOfWork{},
	}
	f.service = NewSignupService(
		f.profiles,
		f.prefs,
		f.states,
		f.pending,
		NewActivityService(&fakeActivityRepo{}, ports.NopLogger{}),
		f.uow,
		ports.NopLogger{},
		requireApproval,
	)
	return f
}

func TestSignupService_RegisterProfile(t *testing.T) {
	input := RegisterInput{
		AccountID: "u1",
		Email:     "Nova@Example.com",
		FirstName: "Nova",
		LastName:  "Usuária",
	}

	t.Run("cria perfil, preferências e registro estendido", func(t *testing.T) {
		f := newSignupFixture(false)

		profile, err := f.service.RegisterProfile(context.Background(), input)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if profile.Email != "nova@example.com" {
			t.Errorf("email deveria ser normalizado, obteve '%s'", profile.Email)
		}
		if profile.FullName != "Nova Usuária" {
			t.Errorf("esperava 'Nova Usuária', obteve '%s'", profile.FullName)
		}
		if profile.Role != entities.RoleUser {
			t.Errorf("novo perfil deveria nascer como user, obteve '%s'", profile.Role)
		}

		if _, ok := f.prefs.prefs["u1"]; !ok {
			t.Error("preferências default não criadas")
		}
		state, ok := f.states.states["u1"]
		if !ok {
			t.Fatal("registro estendido não criado")
		}
		if state.SubscriptionTier != entities.TierFree || !state.IsActive {
			t.Errorf("registro estendido com defaults incorretos: %+v", state)
		}

		if len(f.pending.signups) != 0 {
			t.Error("sem aprovação exigida não deveria criar pending_signup")
		}
		if f.uow.calls != 1 {
			t.Errorf("esperava 1 transação, obteve %d", f.uow.calls)
		}
	})

	t.Run("com aprovação exigida cria cadastro pendente", func(t *testing.T) {
		f := newSignupFixture(true)

		if _, err := f.service.RegisterProfile(context.Background(), input); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		signup, ok := f.pending.signups["nova@example.com"]
		if !ok {
			t.Fatal("pending_signup não criado")
		}
		if !signup.IsPending() || signup.UserID != "u1" {
			t.Errorf("cadastro pendente incorreto: %+v", signup)
		}
	})

	t.Run("email inválido", func(t *testing.T) {
		f := newSignupFixture(false)
		_, err := f.service.RegisterProfile(context.Background(), RegisterInput{AccountID: "u1", Email: "lixo"})
		if !errors.Is(err, domainerrors.ErrInvalidEmail) {
			t.Errorf("esperava ErrInvalidEmail, obteve %v", err)
		}
	})

	t.Run("email duplicado", func(t *testing.T) {
		f := newSignupFixture(false)
		f.profiles.profiles["u0"] = entities.Profile{ID: "u0", Email: "nova@example.com"}

		_, err := f.service.RegisterProfile(context.Background(), input)
		if !errors.Is(err, domainerrors.ErrEmailAlreadyExists) {
			t.Errorf("esperava ErrEmailAlreadyExists, obteve %v", err)
		}
	})
}

func TestUsageService_GetUserUsage(t *testing.T) {
	usage := &fakeUsageRepo{records: []entities.UsageRecord{
		{UserID: "u1", TotalTokens: 4000, Cost: 2.0},
		{UserID: "u1", TotalTokens: 1000, Cost: 0.5},
		{UserID: "u2", TotalTokens: 999, Cost: 9.9},
	}}
	content := &fakeContentRepo{
		threads: []entities.ContentRef{{ID: "t1", UserID: "u1"}},
		files: []entities.ContentRef{
			{ID: "f1", UserID: "u1"},
			{ID: "f2", UserID: "u1"},
		},
	}

	t.Run("com registro estendido", func(t *testing.T) {
		states := newFakeStateRepo(entities.AccountState{
			ID: "u1", MonthlyTokenLimit: 10000, MaxFiles: 4, MaxThreads: 10,
		})
		service := NewUsageService(usage, content, states, ports.NopLogger{})

		stats, err := service.GetUserUsage(context.Background(), "u1")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if stats.TotalTokens != 5000 || stats.TotalCost != 2.5 || stats.TotalRequests != 2 {
			t.Errorf("somas incorretas: %+v", stats)
		}
		if stats.ChatThreads != 1 || stats.FileUploads != 2 || stats.CustomAssistants != 0 {
			t.Errorf("contagens incorretas: %+v", stats)
		}
		if stats.TokenUsagePercent != 50.0 {
			t.Errorf("esperava 50%% de tokens, obteve %v", stats.TokenUsagePercent)
		}
		if stats.FileUsagePercent != 50.0 {
			t.Errorf("esperava 50%% de arquivos, obteve %v", stats.FileUsagePercent)
		}
	})

	t.Run("sem registro estendido usa limites free", func(t *testing.T) {
		service := NewUsageService(usage, content, newFakeStateRepo(), ports.NopLogger{})

		stats, err := service.GetUserUsage(context.Background(), "u1")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if stats.MonthlyTokenLimit != 10000 || stats.MaxFiles != 5 || stats.MaxThreads != 10 {
			t.Errorf("limites default incorretos: %+v", stats)
		}
		if stats.TokenUsagePercent != 50.0 {
			t.Errorf("esperava 50%%, obteve %v", stats.TokenUsagePercent)
		}
	})
}
