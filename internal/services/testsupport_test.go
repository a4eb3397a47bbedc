package services

import (
	"context"
	"errors"

	"github.com/rafabene/userhub-backend/internal/domain/entities"
)

// Fakes in-memory dos repositórios e do diretório, suficientes para
// exercitar os serviços sem banco.

var errBoom = errors.New("boom")

type fakeDirectory struct {
	accounts []entities.Account
	err      error
}

func (f *fakeDirectory) ListAccounts(context.Context) ([]entities.Account, error) {
	return f.accounts, f.err
}

type fakeProfileRepo struct {
	profiles map[string]entities.Profile
	updates  []map[string]any
	listErr  error
}

func newFakeProfileRepo(profiles ...entities.Profile) *fakeProfileRepo {
	repo := &fakeProfileRepo{profiles: map[string]entities.Profile{}}
	for _, p := range profiles {
		repo.profiles[p.ID] = p
	}
	return repo
}

func (f *fakeProfileRepo) Create(_ context.Context, profile *entities.Profile) error {
	f.profiles[profile.ID] = *profile
	return nil
}

func (f *fakeProfileRepo) FindByID(_ context.Context, id string) (*entities.Profile, error) {
	if p, ok := f.profiles[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *fakeProfileRepo) FindByEmail(_ context.Context, email string) (*entities.Profile, error) {
	for _, p := range f.profiles {
		if p.Email == email {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) Update(_ context.Context, id string, fields map[string]any) error {
	f.updates = append(f.updates, fields)
	p := f.profiles[id]
	if role, ok := fields["role"].(string); ok {
		p.Role = entities.Role(role)
	}
	if name, ok := fields["full_name"].(string); ok {
		p.FullName = name
	}
	f.profiles[id] = p
	return nil
}

func (f *fakeProfileRepo) ListAll(context.Context) ([]entities.Profile, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]entities.Profile, 0, len(f.profiles))
	for _, p := range f.profiles {
		out = append(out, p)
	}
	return out, nil
}

type fakeRoleRepo struct {
	assignments map[string]entities.RoleAssignment
}

func newFakeRoleRepo(assignments ...entities.RoleAssignment) *fakeRoleRepo {
	repo := &fakeRoleRepo{assignments: map[string]entities.RoleAssignment{}}
	for _, a := range assignments {
		repo.assignments[a.UserID] = a
	}
	return repo
}

func (f *fakeRoleRepo) FindByUserID(_ context.Context, userID string) (*entities.RoleAssignment, error) {
	if a, ok := f.assignments[userID]; ok {
		return &a, nil
	}
	return nil, nil
}

func (f *fakeRoleRepo) Upsert(_ context.Context, assignment entities.RoleAssignment) error {
	f.assignments[assignment.UserID] = assignment
	return nil
}

func (f *fakeRoleRepo) ListAll(context.Context) ([]entities.RoleAssignment, error) {
	out := make([]entities.RoleAssignment, 0, len(f.assignments))
	for _, a := range f.assignments {
		out = append(out, a)
	}
	return out, nil
}

type fakeStateRepo struct {
	states map[string]entities.AccountState
}

func newFakeStateRepo(states ...entities.AccountState) *fakeStateRepo {
	repo := &fakeStateRepo{states: map[string]entities.AccountState{}}
	for _, s := range states {
		repo.states[s.ID] = s
	}
	return repo
}

func (f *fakeStateRepo) Create(_ context.Context, state *entities.AccountState) error {
	f.states[state.ID] = *state
	return nil
}

func (f *fakeStateRepo) FindByID(_ context.Context, id string) (*entities.AccountState, error) {
	if s, ok := f.states[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (f *fakeStateRepo) SetActive(_ context.Context, id string, active bool) error {
	s := f.states[id]
	s.ID = id
	s.IsActive = active
	f.states[id] = s
	return nil
}

func (f *fakeStateRepo) ListAll(context.Context) ([]entities.AccountState, error) {
	out := make([]entities.AccountState, 0, len(f.states))
	for _, s := range f.states {
		out = append(out, s)
	}
	return out, nil
}

type fakePrefRepo struct {
	prefs map[string]entities.Preference
}

func newFakePrefRepo(prefs ...entities.Preference) *fakePrefRepo {
	repo := &fakePrefRepo{prefs: map[string]entities.Preference{}}
	for _, p := range prefs {
		repo.prefs[p.UserID] = p
	}
	return repo
}

func (f *fakePrefRepo) FindByUserID(_ context.Context, userID string) (*entities.Preference, error) {
	if p, ok := f.prefs[userID]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *fakePrefRepo) Upsert(_ context.Context, pref entities.Preference) error {
	f.prefs[pref.UserID] = pref
	return nil
}

func (f *fakePrefRepo) ListAll(context.Context) ([]entities.Preference, error) {
	out := make([]entities.Preference, 0, len(f.prefs))
	for _, p := range f.prefs {
		out = append(out, p)
	}
	return out, nil
}

type fakeActivityRepo struct {
	entries   []entities.ActivityLogEntry
	insertErr error
	listErr   error
}

func (f *fakeActivityRepo) Insert(_ context.Context, entry *entities.ActivityLogEntry) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeActivityRepo) ListByUser(_ context.Context, userID string, limit int) ([]entities.ActivityLogEntry, error) {
	var out []entities.ActivityLogEntry
	for i := len(f.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if f.entries[i].UserID == userID {
			out = append(out, f.entries[i])
		}
	}
	return out, nil
}

func (f *fakeActivityRepo) ListAll(context.Context) ([]entities.ActivityLogEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.entries, nil
}

type fakeUsageRepo struct {
	records []entities.UsageRecord
	listErr error
}

func (f *fakeUsageRepo) ListByUser(_ context.Context, userID string) ([]entities.UsageRecord, error) {
	var out []entities.UsageRecord
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeUsageRepo) ListAll(context.Context) ([]entities.UsageRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.records, nil
}

type fakeContentRepo struct {
	threads    []entities.ContentRef
	files      []entities.ContentRef
	assistants []entities.ContentRef
}

func (f *fakeContentRepo) ListThreads(context.Context) ([]entities.ContentRef, error) {
	return f.threads, nil
}

func (f *fakeContentRepo) ListFileUploads(context.Context) ([]entities.ContentRef, error) {
	return f.files, nil
}

func (f *fakeContentRepo) ListAssistants(context.Context) ([]entities.ContentRef, error) {
	return f.assistants, nil
}

func (f *fakeContentRepo) CountByUser(_ context.Context, userID string) (int64, int64, int64, error) {
	count := func(refs []entities.ContentRef) int64 {
		var n int64
		for _, r := range refs {
			if r.UserID == userID {
				n++
			}
		}
		return n
	}
	return count(f.threads), count(f.files), count(f.assistants), nil
}

type fakePendingRepo struct {
	signups map[string]entities.PendingSignup // por email
}

func newFakePendingRepo(signups ...entities.PendingSignup) *fakePendingRepo {
	repo := &fakePendingRepo{signups: map[string]entities.PendingSignup{}}
	for _, s := range signups {
		repo.signups[s.Email] = s
	}
	return repo
}

func (f *fakePendingRepo) Create(_ context.Context, signup *entities.PendingSignup) error {
	f.signups[signup.Email] = *signup
	return nil
}

func (f *fakePendingRepo) FindByEmail(_ context.Context, email string) (*entities.PendingSignup, error) {
	if s, ok := f.signups[email]; ok {
		return &s, nil
	}
	return nil, nil
}

func (f *fakePendingRepo) UpdateStatusByEmail(_ context.Context, email, status string) error {
	s := f.signups[email]
	s.Email = email
	s.Status = status
	f.signups[email] = s
	return nil
}

func (f *fakePendingRepo) ListAll(context.Context) ([]entities.PendingSignup, error) {
	out := make([]entities.PendingSignup, 0, len(f.signups))
	for _, s := range f.signups {
		out = append(out, s)
	}
	return out, nil
}

// fakeUnitOfWork executa a função direto, sem transação real
type fakeUnitOfWork struct {
	calls int
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (f *fakeUnitOfWork) Commit(context.Context) error                       { return nil }
func (f *fakeUnitOfWork) Rollback(context.Context) error                     { return nil }

func (f *fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	f.calls++
	return fn(ctx)
}
