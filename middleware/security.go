package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequestSizeLimiter caps request bodies at maxSize bytes. Oversized bodies
// are rejected up front when Content-Length says so, and cut off mid-read
// otherwise.
func RequestSizeLimiter(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			c.AbortWithStatus(http.StatusRequestEntityTooLarge)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}
