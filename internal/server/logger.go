package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/photoprism/emojify/pkg/sanitize"
)

// Logger logs requests with the shared logger.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Debugf("server: %s %s (%d) [%s]",
			c.Request.Method,
			sanitize.Log(path),
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
