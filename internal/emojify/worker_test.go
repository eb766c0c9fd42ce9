package emojify

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/photoprism/emojify/internal/emoji"
	"github.com/photoprism/emojify/internal/face"
	"github.com/photoprism/emojify/internal/photo"
)

func TestBatch(t *testing.T) {
	dir := t.TempDir()

	inputs := []string{"one.png", "two.png", "missing.png"}

	for _, name := range inputs[:2] {
		require.NoError(t, photo.Save(solid(200, 200, white), filepath.Join(dir, name), 0))
	}

	faces := face.Faces{{X: 40, Y: 40, W: 100, H: 100, Smiling: 0.9, LeftEyeOpen: 0.9, RightEyeOpen: 0.9}}
	e := New(face.StaticFactory(faces), emoji.NewAssets(""), OptionsDefault())

	var jobs []Job

	for _, name := range inputs {
		jobs = append(jobs, e.NewJob(filepath.Join(dir, name), filepath.Join(dir, "out", name)))
	}

	result := Batch(context.Background(), jobs, 2)

	assert.Equal(t, 2, result.Composited)
	assert.Equal(t, 0, result.NoFaces)
	assert.Equal(t, 1, result.Failed)
	assert.Len(t, result.Results, 3)

	_, err := os.Stat(filepath.Join(dir, "out", "one.png"))
	assert.NoError(t, err)
}

func TestEmojifier_ProcessFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "empty.png")
	dst := filepath.Join(dir, "empty.emoji.png")

	require.NoError(t, photo.Save(solid(50, 40, white), src, 0))

	result, err := New(face.StaticFactory(nil), emoji.NewAssets(""), OptionsDefault()).ProcessFile(context.Background(), src, dst)

	require.NoError(t, err)
	assert.True(t, result.NoFaces())

	saved, err := photo.Open(dst)

	require.NoError(t, err)
	assert.Equal(t, 50, saved.Bounds().Dx())
	assert.Equal(t, 40, saved.Bounds().Dy())
}
