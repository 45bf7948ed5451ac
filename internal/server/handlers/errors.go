package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/planboard/internal/logger"
	"github.com/alexanderramin/planboard/internal/repository"
	"github.com/alexanderramin/planboard/internal/server/response"
	"github.com/alexanderramin/planboard/internal/service"
)

// respondServiceError maps service errors to HTTP statuses. Anything it does
// not recognise is logged in full and answered with a fixed 500 message.
func respondServiceError(c *gin.Context, log *logger.Logger, op string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidBody):
		response.RespondError(c, http.StatusBadRequest, response.MsgInvalidBody)
	case errors.Is(err, repository.ErrNotFound):
		response.RespondError(c, http.StatusNotFound, response.MsgPlanNotFound)
	default:
		_ = c.Error(err)
		log.Error(op+" failed", "error", err)
		response.RespondError(c, http.StatusInternalServerError, response.MsgInternal)
	}
}

func isInvalidBody(err error) bool {
	return errors.Is(err, service.ErrInvalidBody)
}
