package emoji

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraw(t *testing.T) {
	smile := Draw(Smile, 64)
	frown := Draw(Frown, 64)

	assert.Equal(t, image.Rect(0, 0, 64, 64), smile.Bounds())
	assert.Equal(t, image.Rect(0, 0, DefaultSize, DefaultSize), Draw(Smile, 0).Bounds())

	_, _, _, a := smile.At(0, 0).RGBA()
	assert.Equal(t, uint32(0), a, "corners must be transparent")

	_, _, _, a = smile.At(32, 20).RGBA()
	assert.NotEqual(t, uint32(0), a)

	assert.NotEqual(t, smile.(*image.RGBA).Pix, frown.(*image.RGBA).Pix)
}

func TestAssets(t *testing.T) {
	t.Run("BuiltIn", func(t *testing.T) {
		a := NewAssets("")

		seen := make(map[string]bool)

		for _, c := range Categories {
			img, err := a.Image(c)

			require.NoError(t, err)
			assert.Equal(t, DefaultSize, img.Bounds().Dx())

			seen[string(img.(*image.RGBA).Pix)] = true
		}

		assert.Len(t, seen, len(Categories))
		assert.Equal(t, "", a.FileName(Smile))
	})
	t.Run("Cached", func(t *testing.T) {
		a := NewAssets("")

		first, err := a.Image(Frown)
		require.NoError(t, err)
		second, err := a.Image(Frown)
		require.NoError(t, err)

		assert.Same(t, first.(*image.RGBA), second.(*image.RGBA))
	})
	t.Run("FromPath", func(t *testing.T) {
		dir := t.TempDir()
		custom := imaging.New(16, 8, color.NRGBA{R: 255, A: 255})

		require.NoError(t, imaging.Save(custom, filepath.Join(dir, "smile.png")))

		a := NewAssets(dir)

		img, err := a.Image(Smile)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 16, 8), img.Bounds())

		img, err = a.Image(Frown)
		require.NoError(t, err)
		assert.Equal(t, DefaultSize, img.Bounds().Dx())
	})
	t.Run("Unknown", func(t *testing.T) {
		_, err := NewAssets("").Image(Category(-1))

		assert.Error(t, err)
	})
}
