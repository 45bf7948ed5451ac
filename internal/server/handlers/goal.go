package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/logger"
	"github.com/alexanderramin/planboard/internal/server/response"
	"github.com/alexanderramin/planboard/internal/service"
)

type GoalHandler struct {
	log   *logger.Logger
	goals service.GoalService
}

func NewGoalHandler(log *logger.Logger, goals service.GoalService) *GoalHandler {
	return &GoalHandler{
		log:   log.With("handler", "GoalHandler"),
		goals: goals,
	}
}

// GET /api/goals
func (h *GoalHandler) Get(c *gin.Context) {
	goals, err := h.goals.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, "Get", err)
		return
	}
	response.RespondOK(c, goals)
}

// PUT /api/goals/:year
func (h *GoalHandler) SetYear(c *gin.Context) {
	var set domain.GoalSet
	if err := c.ShouldBindJSON(&set); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.MsgInvalidBody)
		return
	}
	year := c.Param("year")
	if err := h.goals.SetYear(c.Request.Context(), year, set); err != nil {
		respondServiceError(c, h.log, "SetYear", err)
		return
	}
	h.log.Info("goals updated", "year", year)
	response.RespondOK(c, response.Success{Success: true, Year: year})
}
