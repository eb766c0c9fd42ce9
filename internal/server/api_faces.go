package server

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/h2non/filetype"

	"github.com/photoprism/emojify/internal/emojify"
	"github.com/photoprism/emojify/internal/face"
	"github.com/photoprism/emojify/internal/photo"
)

// FindFaces returns the faces in the uploaded image and the emoji chosen for each as JSON.
//
// POST /api/v1/faces
func FindFaces(router *gin.RouterGroup, e *emojify.Emojifier) {
	router.POST("/faces", func(c *gin.Context) {
		data, err := io.ReadAll(io.LimitReader(c.Request.Body, MaxUploadSize+1))

		if err != nil {
			Abort(c, http.StatusBadRequest, "failed reading upload")
			return
		} else if len(data) > MaxUploadSize {
			Abort(c, http.StatusRequestEntityTooLarge, "image too large")
			return
		} else if !filetype.IsImage(data) {
			Abort(c, http.StatusUnsupportedMediaType, "unsupported file type")
			return
		}

		img, _, err := photo.Decode(bytes.NewReader(data))

		if err != nil {
			log.Debugf("server: %s", err)
			Abort(c, http.StatusBadRequest, "invalid image")
			return
		}

		markers, err := e.Markers(c.Request.Context(), img)

		if errors.Is(err, face.ErrDetectorUnavailable) {
			log.Errorf("server: %s", err)
			Abort(c, http.StatusBadGateway, "face detector unavailable")
			return
		} else if err != nil {
			log.Errorf("server: %s", err)
			Abort(c, http.StatusInternalServerError, "failed processing image")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"faces":   len(markers),
			"markers": markers,
		})
	})
}
