package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/planboard/internal/server/middleware"
	"github.com/alexanderramin/planboard/internal/server/response"
)

// StaticHandler serves the frontend for unmatched GET and HEAD requests.
// Every other unmatched request is a JSON 404.
type StaticHandler struct {
	files http.Handler
}

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{files: http.FileServer(http.Dir(dir))}
}

func (h *StaticHandler) NoRoute(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet, http.MethodHead:
		h.files.ServeHTTP(c.Writer, c.Request)
	default:
		response.RespondError(c, http.StatusNotFound, response.MsgRouteNotFound)
	}
}

// Preflight answers OPTIONS requests the CORS middleware let through, such
// as those without an Origin header.
func (h *StaticHandler) Preflight(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", strings.Join(middleware.AllowedMethods, ", "))
	c.Header("Access-Control-Allow-Headers", strings.Join(middleware.AllowedHeaders, ", "))
	c.Status(http.StatusOK)
}
