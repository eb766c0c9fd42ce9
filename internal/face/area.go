package face

import (
	"fmt"
	"image"
	"math"
)

// Area represents a rectangular region in pixel coordinates.
type Area struct {
	Name string  `json:"name,omitempty"`
	X    float32 `json:"x"`
	Y    float32 `json:"y"`
	W    float32 `json:"w"`
	H    float32 `json:"h"`
}

// NewArea returns a new area.
func NewArea(name string, x, y, w, h float32) Area {
	return Area{
		Name: name,
		X:    x,
		Y:    y,
		W:    w,
		H:    h,
	}
}

// String returns the area as string.
func (a Area) String() string {
	return fmt.Sprintf("%.0f-%.0f-%.0f-%.0f", a.X, a.Y, a.W, a.H)
}

// Rectangle returns the area as integer rectangle.
func (a Area) Rectangle() image.Rectangle {
	return image.Rect(
		int(math.Floor(float64(a.X))),
		int(math.Floor(float64(a.Y))),
		int(math.Ceil(float64(a.X+a.W))),
		int(math.Ceil(float64(a.Y+a.H))),
	)
}

// Surface returns the area size.
func (a Area) Surface() float32 {
	if a.W <= 0 || a.H <= 0 {
		return 0
	}

	return a.W * a.H
}

// Overlap returns the surface both areas have in common.
func (a Area) Overlap(other Area) float32 {
	x := float32(math.Max(0, math.Min(float64(a.X+a.W), float64(other.X+other.W))-math.Max(float64(a.X), float64(other.X))))
	y := float32(math.Max(0, math.Min(float64(a.Y+a.H), float64(other.Y+other.H))-math.Max(float64(a.Y), float64(other.Y))))

	return x * y
}

// OverlapPercent returns the overlap relative to the smaller area in percent.
func (a Area) OverlapPercent(other Area) int {
	min := a.Surface()

	if s := other.Surface(); s < min {
		min = s
	}

	if min <= 0 {
		return 0
	}

	return int(math.Round(float64(a.Overlap(other) / min * 100)))
}
