package http

import (
	errs "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/userhub-backend/internal/domain/entities"
	"github.com/rafabene/userhub-backend/internal/domain/errors"
	"github.com/rafabene/userhub-backend/internal/handlers/dto"
	"github.com/rafabene/userhub-backend/internal/infrastructure/metrics"
	"github.com/rafabene/userhub-backend/internal/services"
)

// AdminHandler lida com as rotas administrativas do painel
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler cria um novo AdminHandler
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListUsers lista todos os usuários agregados, com filtros e paginação
func (h *AdminHandler) ListUsers(c *gin.Context) {
	filters := services.UserFilters{
		Role:   c.Query("role"),
		Status: c.Query("status"),
		Tier:   c.Query("tier"),
		Search: c.Query("search"),
	}
	filters.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filters.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "10"))

	page, err := h.adminService.ListUsers(c.Request.Context(), filters)
	if err != nil {
		dto.RespondProblem(c, dto.InternalErrorResponse(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToPaginatedUsersResponse(page))
}

// Overview devolve as estatísticas gerais do sistema
func (h *AdminHandler) Overview(c *gin.Context) {
	overview, err := h.adminService.Overview(c.Request.Context())
	if err != nil {
		dto.RespondProblem(c, dto.InternalErrorResponse(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToOverviewResponse(overview))
}

// ApproveSignup aprova um cadastro pendente
func (h *AdminHandler) ApproveSignup(c *gin.Context) {
	h.decideSignup(c, "approve")
}

// RejectSignup rejeita um cadastro pendente
func (h *AdminHandler) RejectSignup(c *gin.Context) {
	h.decideSignup(c, "reject")
}

func (h *AdminHandler) decideSignup(c *gin.Context, decision string) {
	var req dto.SignupDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondProblem(c, dto.ValidationErrorResponse(c, err))
		return
	}

	actorID := c.GetString("user_id")
	userID := c.Param("id")

	var err error
	var messageKey string
	if decision == "approve" {
		err = h.adminService.ApproveUser(c.Request.Context(), actorID, userID, req.Email)
		messageKey = "signup.approved"
	} else {
		err = h.adminService.RejectUser(c.Request.Context(), actorID, userID, req.Email)
		messageKey = "signup.rejected"
	}

	if err != nil {
		if errs.Is(err, errors.ErrSignupNotPending) {
			dto.RespondProblem(c, dto.ConflictErrorResponse(c, "error.signup_not_pending"))
			return
		}
		dto.RespondProblem(c, dto.InternalErrorResponse(c))
		return
	}

	metrics.CountSignupDecision(decision)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, messageKey)})
}

// UpdateRole muda o papel de um usuário
func (h *AdminHandler) UpdateRole(c *gin.Context) {
	userID := c.Param("id")

	var req dto.RoleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondProblem(c, dto.ValidationErrorResponse(c, err))
		return
	}

	actorID := c.GetString("user_id")

	err := h.adminService.UpdateUserRole(c.Request.Context(), actorID, userID, entities.Role(req.Role))
	if err != nil {
		if errs.Is(err, errors.ErrInvalidRole) {
			dto.RespondProblem(c, dto.BadRequestErrorResponse(c, "error.invalid_role"))
			return
		}
		dto.RespondProblem(c, dto.InternalErrorResponse(c))
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "role.updated")})
}
