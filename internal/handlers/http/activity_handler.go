package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/userhub-backend/internal/handlers/dto"
	"github.com/rafabene/userhub-backend/internal/services"
)

// ActivityHandler lida com o histórico de atividade do usuário
type ActivityHandler struct {
	activityService *services.ActivityService
}

// NewActivityHandler cria um novo ActivityHandler
func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// ListActivities lista os eventos mais recentes de um usuário
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	entries, err := h.activityService.List(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		dto.RespondProblem(c, dto.InternalErrorResponse(c))
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": entries})
}

// LogActivity registra um evento em nome do usuário autenticado
func (h *ActivityHandler) LogActivity(c *gin.Context) {
	var req dto.ActivityLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondProblem(c, dto.ValidationErrorResponse(c, err))
		return
	}

	h.activityService.Log(c.Request.Context(), c.Param("id"), req.ActivityType, req.Description, req.Metadata)

	c.JSON(http.StatusAccepted, gin.H{"status": "recorded"})
}
