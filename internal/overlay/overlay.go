/*
Package overlay composites emoji images over faces.

The emoji width is the face width shrunk by ScaleFactor. The emoji is centered
horizontally on the face and placed a third of its height above the face center,
which lines it up with the eyes and mouth.
*/
package overlay

import (
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
)

// ScaleFactor shrinks the emoji relative to the face width so it looks better on the face.
const ScaleFactor = 0.9

// ErrInvalidGeometry is returned if an image or the resulting emoji has no area.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Point represents a position in pixels relative to the top left corner of the background.
type Point struct {
	X float32
	Y float32
}

// Size represents a width and height in pixels.
type Size struct {
	W float32
	H float32
}

// Options configure compositing.
type Options struct {
	// PreserveAspect applies ScaleFactor once, keeping the emoji aspect ratio.
	// Otherwise the height is scaled twice, which is compatible with earlier releases.
	PreserveAspect bool
}

// Geometry returns the rectangle the emoji occupies when placed over a face,
// relative to the top left corner of the background.
func Geometry(emoji image.Rectangle, pos Point, size Size, opt Options) (image.Rectangle, error) {
	ew, eh := emoji.Dx(), emoji.Dy()

	if ew <= 0 || eh <= 0 {
		return image.Rectangle{}, fmt.Errorf("overlay: emoji is %dx%d (%w)", ew, eh, ErrInvalidGeometry)
	}

	newWidth := int(size.W * ScaleFactor)

	var newHeight int

	if opt.PreserveAspect {
		newHeight = int(float32(eh*newWidth) / float32(ew))
	} else {
		newHeight = int(float32(eh*newWidth/ew) * ScaleFactor)
	}

	if newWidth <= 0 || newHeight <= 0 {
		return image.Rectangle{}, fmt.Errorf("overlay: emoji would be %dx%d for a face of %.1fx%.1f (%w)", newWidth, newHeight, size.W, size.H, ErrInvalidGeometry)
	}

	x := pos.X + size.W/2 - float32(newWidth/2)
	y := pos.Y + size.H/2 - float32(newHeight/3)

	minX := int(math.Round(float64(x)))
	minY := int(math.Round(float64(y)))

	return image.Rect(minX, minY, minX+newWidth, minY+newHeight), nil
}

// Scale resizes an image without interpolation.
func Scale(img image.Image, width, height int) *image.NRGBA {
	result := image.NewNRGBA(image.Rect(0, 0, width, height))

	draw.NearestNeighbor.Scale(result, result.Bounds(), img, img.Bounds(), draw.Src, nil)

	return result
}

// Composite returns a new image that shows the background with the emoji drawn over the face.
// The background is not modified, and the result has the same bounds.
func Composite(background, emoji image.Image, pos Point, size Size, opt Options) (image.Image, error) {
	if background == nil || emoji == nil {
		return nil, fmt.Errorf("overlay: image missing (%w)", ErrInvalidGeometry)
	}

	bounds := background.Bounds()

	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("overlay: background is %dx%d (%w)", bounds.Dx(), bounds.Dy(), ErrInvalidGeometry)
	}

	r, err := Geometry(emoji.Bounds(), pos, size, opt)

	if err != nil {
		return nil, err
	}

	scaled := Scale(emoji, r.Dx(), r.Dy())

	result := NewLike(background)

	draw.Draw(result, bounds, background, bounds.Min, draw.Src)
	draw.Draw(result, r.Add(bounds.Min), scaled, image.Point{}, draw.Over)

	return result, nil
}

// NewLike allocates an empty image with the same bounds and, if possible, the same color model.
// Images that can't be drawn on, like *image.YCbCr, get an *image.RGBA instead.
func NewLike(img image.Image) draw.Image {
	b := img.Bounds()

	switch m := img.(type) {
	case *image.NRGBA:
		return image.NewNRGBA(b)
	case *image.RGBA64:
		return image.NewRGBA64(b)
	case *image.NRGBA64:
		return image.NewNRGBA64(b)
	case *image.Gray:
		return image.NewGray(b)
	case *image.Gray16:
		return image.NewGray16(b)
	case *image.Paletted:
		return image.NewPaletted(b, m.Palette)
	default:
		return image.NewRGBA(b)
	}
}
