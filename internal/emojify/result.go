package emojify

import (
	"image"

	"github.com/photoprism/emojify/internal/emoji"
	"github.com/photoprism/emojify/internal/face"
)

// Status represents the outcome of processing an image.
type Status int

const (
	StatusComposited Status = iota + 1
	StatusNoFaces
)

// String returns the status as string.
func (s Status) String() string {
	switch s {
	case StatusComposited:
		return "composited"
	case StatusNoFaces:
		return "nofaces"
	default:
		return "unknown"
	}
}

// Result represents a processed image.
type Result struct {
	Image      image.Image
	Status     Status
	Faces      face.Faces
	Categories []emoji.Category
}

// NoFaces tests if no faces were found, in which case Image is the original image.
func (r Result) NoFaces() bool {
	return r.Status == StatusNoFaces
}
