package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/userhub-backend/internal/domain/entities"
	"github.com/rafabene/userhub-backend/internal/domain/errors"
	"github.com/rafabene/userhub-backend/internal/handlers/dto"
	"github.com/rafabene/userhub-backend/internal/services"
)

// ProfileHandler lida com perfil, preferências e cadastro
type ProfileHandler struct {
	profileService *services.ProfileService
	signupService  *services.SignupService
}

// NewProfileHandler cria um novo ProfileHandler
func NewProfileHandler(profileService *services.ProfileService, signupService *services.SignupService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		signupService:  signupService,
	}
}

// Register cria o perfil e os registros auxiliares de uma conta nova
func (h *ProfileHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondProblem(c, dto.ValidationErrorResponse(c, err))
		return
	}

	profile, err := h.signupService.RegisterProfile(c.Request.Context(), req.ToRegisterInput())
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrInvalidEmail):
			dto.RespondProblem(c, dto.BadRequestErrorResponse(c, "error.invalid_email"))
		case errs.Is(err, errors.ErrEmailAlreadyExists):
			dto.RespondProblem(c, dto.ConflictErrorResponse(c, "error.email_already_exists"))
		default:
			dto.RespondProblem(c, dto.InternalErrorResponse(c))
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToProfileResponse(profile))
}

// GetProfile busca o perfil de um usuário
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errs.Is(err, errors.ErrProfileNotFound) {
			dto.RespondProblem(c, dto.NotFoundErrorResponse(c, "error.profile_not_found"))
			return
		}
		dto.RespondProblem(c, dto.InternalErrorResponse(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// UpdateProfile atualiza os campos informados do perfil
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondProblem(c, dto.ValidationErrorResponse(c, err))
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), c.Param("id"), req.ToUpdateProfileInput())
	if err != nil {
		if errs.Is(err, errors.ErrProfileNotFound) {
			dto.RespondProblem(c, dto.NotFoundErrorResponse(c, "error.profile_not_found"))
			return
		}
		dto.RespondProblem(c, dto.InternalErrorResponse(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// GetPreferences busca as preferências (defaults quando ausentes)
func (h *ProfileHandler) GetPreferences(c *gin.Context) {
	pref, err := h.profileService.GetPreferences(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.RespondProblem(c, dto.InternalErrorResponse(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToPreferencesResponse(&pref))
}

// UpdatePreferences grava as preferências do usuário
func (h *ProfileHandler) UpdatePreferences(c *gin.Context) {
	var req dto.PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondProblem(c, dto.ValidationErrorResponse(c, err))
		return
	}

	pref := entities.Preference{
		UserID:             c.Param("id"),
		Theme:              req.Theme,
		Language:           req.Language,
		Notifications:      req.Notifications,
		EmailNotifications: req.EmailNotifications,
	}

	if err := h.profileService.UpdatePreferences(c.Request.Context(), pref); err != nil {
		dto.RespondProblem(c, dto.InternalErrorResponse(c))
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "preferences.updated")})
}
