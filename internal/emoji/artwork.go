package emoji

import (
	"image"

	"github.com/carck/gg"
)

// DefaultSize is the width and height of built-in emoji images.
const DefaultSize = 256

// Draw renders the built-in emoji for a category on a transparent square canvas.
// Eyes are drawn from the viewer's perspective, so the left eye appears on the right.
func Draw(c Category, size int) image.Image {
	if size <= 0 {
		size = DefaultSize
	}

	s := float64(size)
	dc := gg.NewContext(size, size)

	dc.DrawCircle(s/2, s/2, s*0.47)
	dc.SetRGB255(255, 204, 77)
	dc.FillPreserve()
	dc.SetRGB255(232, 160, 32)
	dc.SetLineWidth(s * 0.02)
	dc.Stroke()

	dc.SetRGB255(90, 50, 20)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineWidth(s * 0.035)

	drawEye(dc, s*0.35, s*0.4, s, c.RightEyeOpen())
	drawEye(dc, s*0.65, s*0.4, s, c.LeftEyeOpen())

	dc.NewSubPath()

	if c.Smiling() {
		dc.DrawArc(s/2, s*0.55, s*0.22, gg.Radians(25), gg.Radians(155))
	} else {
		dc.DrawArc(s/2, s*0.88, s*0.22, gg.Radians(215), gg.Radians(325))
	}

	dc.Stroke()

	return dc.Image()
}

func drawEye(dc *gg.Context, x, y, s float64, open bool) {
	dc.NewSubPath()

	if open {
		dc.DrawEllipse(x, y, s*0.045, s*0.075)
		dc.Fill()
	} else {
		dc.DrawLine(x-s*0.07, y, x+s*0.07, y)
		dc.Stroke()
	}
}
