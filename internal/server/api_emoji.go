package server

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/photoprism/emojify/internal/emoji"
	"github.com/photoprism/emojify/internal/photo"
	"github.com/photoprism/emojify/pkg/fs"
)

// GetEmoji returns the emoji image for a category name as PNG.
//
// GET /api/v1/emojis/:name
func GetEmoji(router *gin.RouterGroup, assets *emoji.Assets) {
	router.GET("/emojis/:name", func(c *gin.Context) {
		category, err := emoji.ParseCategory(c.Param("name"))

		if err != nil {
			Abort(c, http.StatusNotFound, "emoji not found")
			return
		}

		img, err := assets.Image(category)

		if err != nil {
			log.Errorf("server: %s", err)
			Abort(c, http.StatusInternalServerError, "failed loading emoji")
			return
		}

		var buf bytes.Buffer

		if err = photo.Encode(&buf, img, fs.FormatPng, 0); err != nil {
			log.Errorf("server: %s", err)
			Abort(c, http.StatusInternalServerError, "failed encoding emoji")
			return
		}

		c.Data(http.StatusOK, "image/png", buf.Bytes())
	})
}
