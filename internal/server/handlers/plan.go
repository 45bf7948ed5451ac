package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/logger"
	"github.com/alexanderramin/planboard/internal/server/response"
	"github.com/alexanderramin/planboard/internal/service"
)

type PlanHandler struct {
	log   *logger.Logger
	plans service.PlanService
}

func NewPlanHandler(log *logger.Logger, plans service.PlanService) *PlanHandler {
	return &PlanHandler{
		log:   log.With("handler", "PlanHandler"),
		plans: plans,
	}
}

// GET /api/plans
func (h *PlanHandler) List(c *gin.Context) {
	plans, err := h.plans.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, "List", err)
		return
	}
	response.RespondOK(c, plans)
}

// POST /api/plans
func (h *PlanHandler) Create(c *gin.Context) {
	var body domain.Record
	if err := c.ShouldBindJSON(&body); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.MsgInvalidBody)
		return
	}
	created, err := h.plans.Create(c.Request.Context(), body)
	if err != nil {
		respondServiceError(c, h.log, "Create", err)
		return
	}
	h.log.Info("plan created", "plan_id", created.ID(), "title", created.Title())
	response.RespondCreated(c, created)
}

// PUT /api/plans
func (h *PlanHandler) ReplaceAll(c *gin.Context) {
	var plans []domain.Record
	if err := c.ShouldBindJSON(&plans); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.MsgInvalidFormat)
		return
	}
	n, err := h.plans.ReplaceAll(c.Request.Context(), plans)
	if err != nil {
		if isInvalidBody(err) {
			response.RespondError(c, http.StatusBadRequest, response.MsgInvalidFormat)
			return
		}
		respondServiceError(c, h.log, "ReplaceAll", err)
		return
	}
	h.log.Info("plans replaced", "count", n)
	response.RespondOK(c, response.Success{Success: true, Count: &n})
}

// PUT /api/plans/:id
func (h *PlanHandler) Update(c *gin.Context) {
	var patch domain.Record
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.MsgInvalidBody)
		return
	}
	updated, err := h.plans.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondServiceError(c, h.log, "Update", err)
		return
	}
	h.log.Info("plan updated", "plan_id", updated.ID(), "title", updated.Title())
	response.RespondOK(c, updated)
}

// PATCH /api/plans/:id
func (h *PlanHandler) Toggle(c *gin.Context) {
	toggled, err := h.plans.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.log, "Toggle", err)
		return
	}
	h.log.Info("plan toggled", "plan_id", toggled.ID(), "completed", toggled.Completed())
	response.RespondOK(c, toggled)
}

// DELETE /api/plans/:id
func (h *PlanHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.plans.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.log, "Delete", err)
		return
	}
	h.log.Info("plan deleted", "plan_id", id)
	response.RespondOK(c, response.Success{Success: true})
}
