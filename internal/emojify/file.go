package emojify

import (
	"context"
	"path/filepath"
	"time"

	"github.com/photoprism/emojify/internal/photo"
	"github.com/photoprism/emojify/pkg/sanitize"
)

// ProcessFile processes an image file and saves the result as outputName.
// Images without faces are saved unchanged.
func (e *Emojifier) ProcessFile(ctx context.Context, fileName, outputName string) (result Result, err error) {
	start := time.Now()

	img, err := photo.Open(fileName)

	if err != nil {
		return result, err
	}

	if result, err = e.Process(ctx, img); err != nil {
		return result, err
	}

	if err = photo.Save(result.Image, outputName, e.opt.JpegQuality); err != nil {
		return result, err
	}

	log.Infof("emojify: saved %s as %s, %s [%s]", sanitize.Log(filepath.Base(fileName)), sanitize.Log(filepath.Base(outputName)), result.Status, time.Since(start))

	return result, nil
}
