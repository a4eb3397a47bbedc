package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rafabene/userhub-backend/internal/domain/entities"
	"github.com/rafabene/userhub-backend/internal/domain/errors"
	"github.com/rafabene/userhub-backend/internal/domain/ports"
	"github.com/rafabene/userhub-backend/internal/domain/repositories"
	"github.com/rafabene/userhub-backend/internal/domain/valueobjects"
)

// SignupService cria os registros locais de uma conta recém-criada no
// provedor de auth: perfil, preferências e registro estendido, mais o
// cadastro pendente quando a aprovação administrativa está habilitada.
type SignupService struct {
	profiles        repositories.ProfileRepository
	prefs           repositories.PreferenceRepository
	states          repositories.AccountStateRepository
	pending         repositories.PendingSignupRepository
	activity        *ActivityService
	uow             ports.UnitOfWork
	logger          ports.Logger
	requireApproval bool
}

// NewSignupService cria um novo SignupService
func NewSignupService(
	profiles repositories.ProfileRepository,
	prefs repositories.PreferenceRepository,
	states repositories.AccountStateRepository,
	pending repositories.PendingSignupRepository,
	activity *ActivityService,
	uow ports.UnitOfWork,
	logger ports.Logger,
	requireApproval bool,
) *SignupService {
	return &SignupService{
		profiles:        profiles,
		prefs:           prefs,
		states:          states,
		pending:         pending,
		activity:        activity,
		uow:             uow,
		logger:          logger,
		requireApproval: requireApproval,
	}
}

// RegisterInput representa os dados do registro pós-provedor
type RegisterInput struct {
	AccountID string
	Email     string
	FirstName string
	LastName  string
}

// RegisterProfile materializa os registros locais da conta. A conta em si
// já existe no provedor de auth; aqui só entram as tabelas deste serviço.
func (s *SignupService) RegisterProfile(ctx context.Context, input RegisterInput) (*entities.Profile, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	existing, err := s.profiles.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	now := time.Now().UTC()
	profile := entities.Profile{
		ID:        input.AccountID,
		Email:     email.String(),
		FullName:  fullName(input.FirstName, input.LastName),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      entities.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	pref := entities.DefaultPreference(input.AccountID)
	state := entities.DefaultAccountState(input.AccountID, email.String())

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.profiles.Create(txCtx, &profile); err != nil {
			return err
		}
		if err := s.prefs.Upsert(txCtx, pref); err != nil {
			return err
		}
		if err := s.states.Create(txCtx, &state); err != nil {
			return err
		}
		if s.requireApproval {
			signup := entities.PendingSignup{
				ID:        uuid.NewString(),
				UserID:    input.AccountID,
				Email:     email.String(),
				Status:    entities.SignupStatusPending,
				CreatedAt: now,
			}
			return s.pending.Create(txCtx, &signup)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("profile registered",
		"user_id", input.AccountID,
		"email", email.String(),
		"pending_approval", s.requireApproval,
	)
	s.activity.Log(ctx, input.AccountID, entities.ActivitySignup, "account records created", nil)

	return &profile, nil
}

func fullName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
