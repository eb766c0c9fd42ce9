package emoji

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/patrickmn/go-cache"

	"github.com/photoprism/emojify/pkg/fs"
	"github.com/photoprism/emojify/pkg/sanitize"
)

// Assets provides emoji images by category. Images in the assets path take
// precedence over the built-in artwork.
type Assets struct {
	path  string
	size  int
	cache *cache.Cache
}

// NewAssets returns a new asset store. The path may be empty.
func NewAssets(path string) *Assets {
	return &Assets{
		path:  path,
		size:  DefaultSize,
		cache: cache.New(cache.NoExpiration, cache.NoExpiration),
	}
}

// Path returns the assets path.
func (a *Assets) Path() string {
	return a.path
}

// FileName returns the asset file name for a category, or an empty string if no assets path is set.
func (a *Assets) FileName(c Category) string {
	if a.path == "" {
		return ""
	}

	return filepath.Join(a.path, c.Name()+fs.FormatPng.Ext())
}

// Image returns the emoji image for a category. Returned images must not be modified.
func (a *Assets) Image(c Category) (image.Image, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("emoji: unknown category %d", int(c))
	}

	key := c.Name()

	if img, ok := a.cache.Get(key); ok {
		return img.(image.Image), nil
	}

	var img image.Image

	if fileName := a.FileName(c); fs.FileExists(fileName) {
		m, err := imaging.Open(fileName)

		if err != nil {
			return nil, fmt.Errorf("emoji: %s in %s", err, sanitize.Log(filepath.Base(fileName)))
		}

		log.Debugf("emoji: loaded %s", sanitize.Log(filepath.Base(fileName)))

		img = m
	} else {
		img = Draw(c, a.size)
	}

	a.cache.SetDefault(key, img)

	return img, nil
}

// Flush removes all cached images.
func (a *Assets) Flush() {
	a.cache.Flush()
}
