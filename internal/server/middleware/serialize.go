package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
)

// Serialize runs requests one at a time, so the load-modify-save cycle of
// one request never interleaves with another within the process.
func Serialize() gin.HandlerFunc {
	var mu sync.Mutex
	return func(c *gin.Context) {
		mu.Lock()
		defer mu.Unlock()
		c.Next()
	}
}
