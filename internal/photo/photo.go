/*
Package photo decodes and encodes images, applying the Exif orientation.
*/
package photo

import (
	"github.com/photoprism/emojify/internal/event"
)

var log = event.Log

// JpegQuality is the default JPEG quality of saved images.
const JpegQuality = 92
