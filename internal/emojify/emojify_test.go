package emojify

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/photoprism/emojify/internal/emoji"
	"github.com/photoprism/emojify/internal/event"
	"github.com/photoprism/emojify/internal/face"
	"github.com/photoprism/emojify/internal/overlay"
)

type testDetector struct {
	faces    face.Faces
	err      error
	released int
}

func (d *testDetector) Detect(ctx context.Context, img image.Image) (face.Faces, error) {
	return d.faces, d.err
}

func (d *testDetector) Release() error {
	d.released++
	return nil
}

func (d *testDetector) Factory() face.Factory {
	return func(opt face.Options) (face.Detector, error) {
		return d, nil
	}
}

type testAssets map[emoji.Category]image.Image

func (a testAssets) Image(c emoji.Category) (image.Image, error) {
	if img, ok := a[c]; ok {
		return img, nil
	}

	return nil, errors.New("missing asset")
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}

	return img
}

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.NRGBA{R: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

func receive(s event.Subscription, timeout time.Duration) (msgs []event.Message) {
	for {
		select {
		case msg := <-s.Receiver:
			msgs = append(msgs, msg)
		case <-time.After(timeout):
			return msgs
		}
	}
}

func TestEmojifier_Process(t *testing.T) {
	assets := testAssets{
		emoji.Smile:       solid(64, 64, red),
		emoji.ClosedFrown: solid(64, 64, blue),
	}

	t.Run("Composited", func(t *testing.T) {
		d := &testDetector{faces: face.Faces{
			{X: 50, Y: 50, W: 100, H: 100, Smiling: 0.2, LeftEyeOpen: 0.6, RightEyeOpen: 0.6},
			{X: 200, Y: 50, W: 80, H: 80, Smiling: 0.1, LeftEyeOpen: 0.3, RightEyeOpen: 0.3},
		}}

		s := event.Subscribe(EventComposited)
		defer event.Unsubscribe(s)

		bg := solid(300, 200, white)
		result, err := New(d.Factory(), assets, OptionsDefault()).Process(context.Background(), bg)

		require.NoError(t, err)
		assert.Equal(t, StatusComposited, result.Status)
		assert.False(t, result.NoFaces())
		assert.Equal(t, []emoji.Category{emoji.Smile, emoji.ClosedFrown}, result.Categories)
		assert.Equal(t, 2, result.Faces.Count())
		assert.Equal(t, bg.Bounds(), result.Image.Bounds())
		assert.IsType(t, bg, result.Image)

		out := result.Image.(*image.NRGBA)
		assert.Equal(t, red, out.NRGBAAt(100, 100))
		assert.Equal(t, blue, out.NRGBAAt(240, 90))
		assert.Equal(t, white, out.NRGBAAt(5, 5))
		assert.Equal(t, white, bg.NRGBAAt(100, 100))

		assert.Equal(t, 1, d.released)

		msgs := receive(s, 100*time.Millisecond)
		require.Len(t, msgs, 1)
		assert.Equal(t, 2, msgs[0].Fields["faces"])
	})
	t.Run("NoFaces", func(t *testing.T) {
		d := &testDetector{}

		s := event.Subscribe(EventNoFaces)
		defer event.Unsubscribe(s)

		bg := solid(100, 100, white)
		result, err := New(d.Factory(), assets, OptionsDefault()).Process(context.Background(), bg)

		require.NoError(t, err)
		assert.True(t, result.NoFaces())
		assert.Equal(t, "nofaces", result.Status.String())
		assert.Same(t, bg, result.Image.(*image.NRGBA))
		assert.Equal(t, 1, d.released)

		msgs := receive(s, 100*time.Millisecond)
		require.Len(t, msgs, 1)
		assert.Equal(t, NoFacesMessage, msgs[0].Fields["message"])
	})
	t.Run("DetectorFailed", func(t *testing.T) {
		d := &testDetector{err: errors.New("out of memory")}

		result, err := New(d.Factory(), assets, OptionsDefault()).Process(context.Background(), solid(10, 10, white))

		assert.True(t, errors.Is(err, face.ErrDetectorUnavailable))
		assert.Nil(t, result.Image)
		assert.Equal(t, 1, d.released)
	})
	t.Run("DetectorNotAcquired", func(t *testing.T) {
		factory := func(opt face.Options) (face.Detector, error) {
			return nil, errors.New("no model")
		}

		_, err := New(factory, assets, OptionsDefault()).Process(context.Background(), solid(10, 10, white))

		assert.True(t, errors.Is(err, face.ErrDetectorUnavailable))
	})
	t.Run("NoDetector", func(t *testing.T) {
		_, err := New(nil, assets, OptionsDefault()).Process(context.Background(), solid(10, 10, white))

		assert.True(t, errors.Is(err, face.ErrDetectorUnavailable))
	})
	t.Run("InvalidGeometry", func(t *testing.T) {
		d := &testDetector{faces: face.Faces{
			{X: 10, Y: 10, W: 80, H: 80, Smiling: 0.9, LeftEyeOpen: 0.9, RightEyeOpen: 0.9},
			{X: 50, Y: 50, W: 1, H: 1, Smiling: 0.9, LeftEyeOpen: 0.9, RightEyeOpen: 0.9},
		}}

		result, err := New(d.Factory(), assets, OptionsDefault()).Process(context.Background(), solid(100, 100, white))

		assert.True(t, errors.Is(err, overlay.ErrInvalidGeometry))
		assert.Nil(t, result.Image)
		assert.Equal(t, 1, d.released)
	})
	t.Run("MissingAsset", func(t *testing.T) {
		d := &testDetector{faces: face.Faces{{X: 10, Y: 10, W: 80, H: 80, Smiling: 0.9}}}

		_, err := New(d.Factory(), assets, OptionsDefault()).Process(context.Background(), solid(100, 100, white))

		assert.Error(t, err)
		assert.Equal(t, 1, d.released)
	})
	t.Run("NilImage", func(t *testing.T) {
		d := &testDetector{}

		_, err := New(d.Factory(), assets, OptionsDefault()).Process(context.Background(), nil)

		assert.True(t, errors.Is(err, overlay.ErrInvalidGeometry))
		assert.Equal(t, 0, d.released)
	})
	t.Run("BuiltInAssets", func(t *testing.T) {
		faces := face.Faces{{X: 20, Y: 20, W: 120, H: 120, Smiling: 0.5, LeftEyeOpen: 0.1, RightEyeOpen: 0.9}}

		result, err := New(face.StaticFactory(faces), emoji.NewAssets(""), OptionsDefault()).Process(context.Background(), image.NewRGBA(image.Rect(0, 0, 160, 160)))

		require.NoError(t, err)
		assert.Equal(t, []emoji.Category{emoji.LeftWink}, result.Categories)
		assert.IsType(t, &image.RGBA{}, result.Image)
	})
}
