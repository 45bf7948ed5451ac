package middleware

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	AllowedMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}
	AllowedHeaders = []string{"Content-Type"}
)

// CORS allows every origin. Preflights are answered with 200 and no body.
// Access-Control-Allow-Origin is sent on every response, including requests
// without an Origin header or from the server's own host, which cors.New
// leaves untouched.
func CORS() gin.HandlerFunc {
	handler := cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              AllowedMethods,
		AllowHeaders:              AllowedHeaders,
		OptionsResponseStatusCode: http.StatusOK,
	})
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		handler(c)
	}
}
