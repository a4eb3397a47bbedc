package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/userhub-backend/internal/handlers/dto"
	"github.com/rafabene/userhub-backend/internal/services"
)

// UsageHandler expõe as estatísticas de consumo por usuário
type UsageHandler struct {
	usageService *services.UsageService
}

// NewUsageHandler cria um novo UsageHandler
func NewUsageHandler(usageService *services.UsageService) *UsageHandler {
	return &UsageHandler{usageService: usageService}
}

// GetUsage devolve o resumo de consumo de um usuário
func (h *UsageHandler) GetUsage(c *gin.Context) {
	stats, err := h.usageService.GetUserUsage(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.RespondProblem(c, dto.InternalErrorResponse(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToUsageStatsResponse(stats))
}
