/*
Package emojify detects faces in photos and covers each one with a matching emoji.

An Emojifier acquires a face detector for every image and releases it on all
exit paths. Each face is classified by expression and the matching emoji is
composited over it. Images without faces are returned unchanged and an
EventNoFaces notification is published.
*/
package emojify

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/dustin/go-humanize/english"

	"github.com/photoprism/emojify/internal/emoji"
	"github.com/photoprism/emojify/internal/event"
	"github.com/photoprism/emojify/internal/face"
	"github.com/photoprism/emojify/internal/overlay"
)

var log = event.Log

// NoFacesMessage is the notification text for images without faces.
const NoFacesMessage = "No faces detected in the image"

const (
	EventNoFaces    = "emojify.nofaces"
	EventComposited = "emojify.composited"
)

// Assets provides emoji images by category.
type Assets interface {
	Image(c emoji.Category) (image.Image, error)
}

// Emojifier overlays emojis on faces found by a detector.
type Emojifier struct {
	detector face.Factory
	assets   Assets
	opt      Options
}

// New returns a new Emojifier.
func New(detector face.Factory, assets Assets, opt Options) *Emojifier {
	return &Emojifier{
		detector: detector,
		assets:   assets,
		opt:      opt,
	}
}

// Options returns the emojifier options.
func (e *Emojifier) Options() Options {
	return e.opt
}

// Process detects faces in img and returns a new image with an emoji over every face.
// If no faces are found, the original image is returned with StatusNoFaces.
func (e *Emojifier) Process(ctx context.Context, img image.Image) (result Result, err error) {
	if img == nil {
		return result, fmt.Errorf("emojify: image missing (%w)", overlay.ErrInvalidGeometry)
	}

	if e.assets == nil {
		return result, fmt.Errorf("emojify: no emoji assets configured")
	}

	faces, err := e.detect(ctx, img)

	if err != nil {
		return result, err
	}

	if faces.Count() == 0 {
		event.Publish(EventNoFaces, event.Data{"message": NoFacesMessage})

		return Result{Image: img, Status: StatusNoFaces}, nil
	}

	if faces.Overlapping() {
		log.Debugf("emojify: faces overlap, later emojis will cover earlier ones")
	}

	current := img
	categories := make([]emoji.Category, 0, faces.Count())
	names := make([]string, 0, faces.Count())

	for i, f := range faces {
		c := emoji.ForFace(f)

		emojiImg, err := e.assets.Image(c)

		if err != nil {
			return Result{}, fmt.Errorf("emojify: %w", err)
		}

		x, y := f.Position()
		w, h := f.Size()

		current, err = overlay.Composite(current, emojiImg, overlay.Point{X: x, Y: y}, overlay.Size{W: w, H: h}, e.opt.Overlay())

		if err != nil {
			return Result{}, fmt.Errorf("emojify: face %d: %w", i+1, err)
		}

		log.Tracef("emojify: face %d %s is %s", i+1, f.String(), c)

		categories = append(categories, c)
		names = append(names, c.Name())
	}

	event.Publish(EventComposited, event.Data{
		"faces":  faces.Count(),
		"emojis": names,
	})

	return Result{
		Image:      current,
		Status:     StatusComposited,
		Faces:      faces,
		Categories: categories,
	}, nil
}

// Markers detects faces in img and returns their emoji categories without changing the image.
func (e *Emojifier) Markers(ctx context.Context, img image.Image) (Markers, error) {
	if img == nil {
		return Markers{}, fmt.Errorf("emojify: image missing (%w)", overlay.ErrInvalidGeometry)
	}

	faces, err := e.detect(ctx, img)

	if err != nil {
		return Markers{}, err
	}

	result := make(Markers, 0, faces.Count())

	for _, f := range faces {
		result = append(result, NewMarker(f, emoji.ForFace(f), img.Bounds()))
	}

	return result, nil
}

// detect acquires a detector, runs it on img and releases it on all paths.
func (e *Emojifier) detect(ctx context.Context, img image.Image) (faces face.Faces, err error) {
	if e.detector == nil {
		return faces, fmt.Errorf("emojify: no detector configured (%w)", face.ErrDetectorUnavailable)
	}

	detector, err := e.detector(e.opt.Detector)

	if err != nil {
		return faces, detectorError(err)
	}

	defer func() {
		if releaseErr := detector.Release(); releaseErr != nil {
			log.Warnf("emojify: %s (release detector)", releaseErr)
		}
	}()

	if faces, err = detector.Detect(ctx, img); err != nil {
		return faces, detectorError(err)
	}

	log.Debugf("emojify: detected %s, %d%% uncertainty", english.Plural(faces.Count(), "face", "faces"), faces.Uncertainty())

	return faces, nil
}

func detectorError(err error) error {
	if errors.Is(err, face.ErrDetectorUnavailable) {
		return fmt.Errorf("emojify: %w", err)
	}

	return fmt.Errorf("emojify: %s (%w)", err, face.ErrDetectorUnavailable)
}
