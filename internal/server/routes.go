package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/photoprism/emojify/internal/config"
	"github.com/photoprism/emojify/internal/emojify"
)

func registerRoutes(router *gin.Engine, conf *config.Config, e *emojify.Emojifier) {
	api := router.Group(ApiUri)

	GetStatus(api)
	EmojifyImage(api, e, conf.JpegQuality())
	FindFaces(api, e)
	GetEmoji(api, conf.Assets())
}

// GetStatus reports if the server is operational.
//
// GET /api/v1/status
func GetStatus(router *gin.RouterGroup) {
	router.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "operational"})
	})
}

// Abort aborts the request with a JSON error message.
func Abort(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, gin.H{"error": msg, "code": code})
}
