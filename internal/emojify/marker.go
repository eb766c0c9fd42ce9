package emojify

import (
	"encoding/json"
	"image"

	"github.com/photoprism/emojify/internal/emoji"
	"github.com/photoprism/emojify/internal/face"
)

// MarkerFace is the marker type for faces.
const MarkerFace = "face"

// Marker represents a face and the emoji that covers it.
type Marker struct {
	Face     face.Face
	Category emoji.Category
	Bounds   image.Rectangle
}

// Markers represents a list of markers.
type Markers []Marker

// NewMarker returns a marker for a face in an image with the given bounds.
func NewMarker(f face.Face, c emoji.Category, bounds image.Rectangle) Marker {
	return Marker{Face: f, Category: c, Bounds: bounds}
}

// Relative returns the face area with coordinates relative to the image size.
func (m Marker) Relative() face.Area {
	w, h := float32(m.Bounds.Dx()), float32(m.Bounds.Dy())

	if w <= 0 || h <= 0 {
		return face.NewArea(m.Category.Name(), 0, 0, 0, 0)
	}

	return face.NewArea(
		m.Category.Name(),
		m.Face.X/w,
		m.Face.Y/h,
		m.Face.W/w,
		m.Face.H/h,
	)
}

// MarshalJSON returns the JSON encoding.
func (m Marker) MarshalJSON() ([]byte, error) {
	a := m.Relative()

	return json.Marshal(&struct {
		Type         string
		Emoji        string
		X            float32
		Y            float32
		W            float32 `json:",omitempty"`
		H            float32 `json:",omitempty"`
		Score        int     `json:",omitempty"`
		Smiling      float32
		LeftEyeOpen  float32
		RightEyeOpen float32
	}{
		Type:         MarkerFace,
		Emoji:        m.Category.Name(),
		X:            a.X,
		Y:            a.Y,
		W:            a.W,
		H:            a.H,
		Score:        m.Face.Score,
		Smiling:      m.Face.Smiling,
		LeftEyeOpen:  m.Face.LeftEyeOpen,
		RightEyeOpen: m.Face.RightEyeOpen,
	})
}

// Markers returns a marker for every face covered by an emoji.
func (r Result) Markers() Markers {
	if r.Image == nil || len(r.Faces) != len(r.Categories) {
		return Markers{}
	}

	result := make(Markers, len(r.Faces))

	for i := range r.Faces {
		result[i] = NewMarker(r.Faces[i], r.Categories[i], r.Image.Bounds())
	}

	return result
}
