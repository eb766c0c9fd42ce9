package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"github.com/h2non/filetype"

	"github.com/photoprism/emojify/internal/emojify"
	"github.com/photoprism/emojify/internal/face"
	"github.com/photoprism/emojify/internal/overlay"
	"github.com/photoprism/emojify/internal/photo"
	"github.com/photoprism/emojify/pkg/fs"
	"github.com/photoprism/emojify/pkg/sanitize"
)

// MaxUploadSize is the maximum image upload size in bytes.
const MaxUploadSize = 32 << 20

const (
	HeaderStatus = "X-Emojify-Status"
	HeaderFaces  = "X-Emojify-Faces"
)

// EmojifyImage overlays emojis on the faces in the uploaded image and returns the result.
// The image is sent as request body, the optional "name" query parameter sets the download name.
//
// POST /api/v1/emojify
func EmojifyImage(router *gin.RouterGroup, e *emojify.Emojifier, quality int) {
	router.POST("/emojify", func(c *gin.Context) {
		data, err := io.ReadAll(io.LimitReader(c.Request.Body, MaxUploadSize+1))

		if err != nil {
			Abort(c, http.StatusBadRequest, "failed reading upload")
			return
		} else if len(data) > MaxUploadSize {
			Abort(c, http.StatusRequestEntityTooLarge, "image too large")
			return
		}

		if !filetype.IsImage(data) {
			Abort(c, http.StatusUnsupportedMediaType, "unsupported file type")
			return
		}

		if kind, err := filetype.Match(data); err == nil {
			log.Debugf("server: received %s upload", sanitize.Log(kind.MIME.Value))
		}

		img, format, err := photo.Decode(bytes.NewReader(data))

		if err != nil {
			log.Debugf("server: %s", err)
			Abort(c, http.StatusBadRequest, "invalid image")
			return
		}

		result, err := e.Process(c.Request.Context(), img)

		switch {
		case err == nil:
		case errors.Is(err, face.ErrDetectorUnavailable):
			log.Errorf("server: %s", err)
			Abort(c, http.StatusBadGateway, "face detector unavailable")
			return
		case errors.Is(err, overlay.ErrInvalidGeometry):
			log.Warnf("server: %s", err)
			Abort(c, http.StatusUnprocessableEntity, "face too small for emoji")
			return
		default:
			log.Errorf("server: %s", err)
			Abort(c, http.StatusInternalServerError, "failed processing image")
			return
		}

		var buf bytes.Buffer

		if err = photo.Encode(&buf, result.Image, photo.OutputFormat(format), quality); err != nil {
			log.Errorf("server: %s", err)
			Abort(c, http.StatusInternalServerError, "failed encoding image")
			return
		}

		c.Header(HeaderStatus, result.Status.String())
		c.Header(HeaderFaces, strconv.Itoa(result.Faces.Count()))
		c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", DownloadName(c.Query("name"), format)))
		c.Data(http.StatusOK, photo.MimeType(format), buf.Bytes())
	})
}

// DownloadName returns a safe file name for a processed image.
func DownloadName(name string, format fs.FileFormat) string {
	base := slug.Make(fs.StripExt(name))

	if base == "" {
		base = "image"
	}

	return base + ".emoji" + photo.OutputFormat(format).Ext()
}
