package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Client-facing error messages. The bundled frontend shows them verbatim.
const (
	MsgInvalidBody   = "无效的请求数据"
	MsgInvalidFormat = "无效的数据格式"
	MsgPlanNotFound  = "计划不存在"
	MsgRouteNotFound = "未找到路由"
	MsgInternal      = "服务器内部错误"
)

type ErrorBody struct {
	Error string `json:"error"`
}

// Success is the body of mutations that return no resource.
type Success struct {
	Success bool   `json:"success"`
	Count   *int   `json:"count,omitempty"`
	Year    string `json:"year,omitempty"`
}

func RespondError(c *gin.Context, status int, msg string) {
	if msg == "" {
		msg = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorBody{Error: msg})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
