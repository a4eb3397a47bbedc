package services

import (
	"context"

	"github.com/rafabene/userhub-backend/internal/domain/entities"
	"github.com/rafabene/userhub-backend/internal/domain/errors"
	"github.com/rafabene/userhub-backend/internal/domain/ports"
	"github.com/rafabene/userhub-backend/internal/domain/repositories"
)

// ProfileService contém a lógica de perfil e preferências do usuário
type ProfileService struct {
	profiles repositories.ProfileRepository
	prefs    repositories.PreferenceRepository
	activity *ActivityService
	logger   ports.Logger
}

// NewProfileService cria um novo ProfileService
func NewProfileService(
	profiles repositories.ProfileRepository,
	prefs repositories.PreferenceRepository,
	activity *ActivityService,
	logger ports.Logger,
) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		prefs:    prefs,
		activity: activity,
		logger:   logger,
	}
}

// GetProfile busca o perfil de um usuário
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*entities.Profile, error) {
	profile, err := s.profiles.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.ErrProfileNotFound
	}
	return profile, nil
}

// UpdateProfileInput representa os campos editáveis do perfil.
// Ponteiros nulos significam "não alterar".
type UpdateProfileInput struct {
	FullName  *string
	Website   *string
	Username  *string
	AvatarURL *string
}

// UpdateProfile atualiza os campos informados e registra a atividade
func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entities.Profile, error) {
	existing, err := s.profiles.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.ErrProfileNotFound
	}

	fields := map[string]any{}
	if input.FullName != nil {
		fields["full_name"] = *input.FullName
	}
	if input.Website != nil {
		fields["website"] = *input.Website
	}
	if input.Username != nil {
		fields["username"] = *input.Username
	}
	if input.AvatarURL != nil {
		fields["avatar_url"] = *input.AvatarURL
	}

	if len(fields) > 0 {
		if err := s.profiles.Update(ctx, userID, fields); err != nil {
			return nil, err
		}
		s.activity.Log(ctx, userID, entities.ActivityProfileUpdate, "profile updated", nil)
	}

	return s.profiles.FindByID(ctx, userID)
}

// GetPreferences retorna as preferências do usuário, com defaults quando
// nunca foram salvas.
func (s *ProfileService) GetPreferences(ctx context.Context, userID string) (entities.Preference, error) {
	pref, err := s.prefs.FindByUserID(ctx, userID)
	if err != nil {
		return entities.Preference{}, err
	}
	if pref == nil {
		return entities.DefaultPreference(userID), nil
	}
	return *pref, nil
}

// UpdatePreferences grava (upsert) as preferências e registra a atividade
func (s *ProfileService) UpdatePreferences(ctx context.Context, pref entities.Preference) error {
	if err := s.prefs.Upsert(ctx, pref); err != nil {
		return err
	}
	s.activity.Log(ctx, pref.UserID, entities.ActivitySettingsUpdate, "preferences updated", nil)
	return nil
}
