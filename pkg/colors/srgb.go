package colors

import (
	"image"
	"image/color"

	"github.com/mandykoh/prism/displayp3"
	"github.com/mandykoh/prism/srgb"
)

// ToSRGB converts an image to sRGB colors. Images in unsupported profiles are returned unchanged.
func ToSRGB(img image.Image, profile Profile) image.Image {
	if img == nil || profile != ProfileDisplayP3 {
		return img
	}

	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c, alpha := displayp3.ColorFromNRGBA(color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA))
			out.SetNRGBA(x, y, srgb.ColorFromXYZ(c.ToXYZ()).ToNRGBA(alpha))
		}
	}

	return out
}
