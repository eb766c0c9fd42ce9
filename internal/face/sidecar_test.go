package face

import (
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSidecar(t *testing.T) {
	bounds := image.Rect(0, 0, 400, 300)

	t.Run("Yaml", func(t *testing.T) {
		data := []byte(`
- bbox: [50, 50, 150, 150]
  smiling: 0.2
  left_eye_open: 0.6
  right_eye_open: 0.4
- bbox: [500, 500, 600, 600]
  smiling: 0.9
`)
		faces, err := ParseSidecar(data, bounds, DefaultMinScore)

		require.NoError(t, err)
		require.Len(t, faces, 1)
		assert.Equal(t, 100, faces[0].Score)
		assert.Equal(t, float32(0.4), faces[0].RightEyeOpen)
	})
	t.Run("OffsetBounds", func(t *testing.T) {
		faces, err := ParseSidecar([]byte("- bbox: [0, 0, 100, 100]\n"), image.Rect(100, 100, 300, 300), DefaultMinScore)

		require.NoError(t, err)
		assert.Len(t, faces, 1)
	})
	t.Run("Json", func(t *testing.T) {
		faces, err := ParseSidecar([]byte(testResponse), bounds, DefaultMinScore)

		require.NoError(t, err)
		assert.Len(t, faces, 1)
	})
	t.Run("Invalid", func(t *testing.T) {
		_, err := ParseSidecar([]byte("bbox: ["), bounds, DefaultMinScore)

		assert.Error(t, err)
	})
}

func TestSidecar(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "party.faces.yml")

	_, err := NewSidecar(fileName, OptionsSingle())
	assert.True(t, errors.Is(err, ErrDetectorUnavailable))

	require.NoError(t, os.WriteFile(fileName, []byte("- bbox: [10, 10, 60, 60]\n  smiling: 0.8\n"), 0644))

	d, err := SidecarFactory(fileName)(OptionsSingle())
	require.NoError(t, err)
	defer d.Release()

	faces, err := d.Detect(context.Background(), image.NewGray(image.Rect(0, 0, 100, 100)))

	require.NoError(t, err)
	assert.Equal(t, 1, faces.Count())
}

func TestStatic(t *testing.T) {
	faces := Faces{{X: 1, Y: 2, W: 3, H: 4}}

	d, err := StaticFactory(faces)(OptionsSingle())
	require.NoError(t, err)

	result, err := d.Detect(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, faces, result)

	result[0].X = 99
	assert.Equal(t, float32(1), faces[0].X)
	assert.NoError(t, d.Release())
}
