package photo

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/disintegration/imaging"
	"github.com/mandykoh/prism/meta/autometa"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/photoprism/emojify/pkg/colors"
	"github.com/photoprism/emojify/pkg/fs"
	"github.com/photoprism/emojify/pkg/sanitize"
)

// Open loads an image from disk and rotates it according to its Exif orientation.
func Open(fileName string) (result image.Image, err error) {
	if fileName == "" {
		return result, fmt.Errorf("photo: filename missing")
	}

	logName := sanitize.Log(filepath.Base(fileName))

	if !fs.FileExists(fileName) {
		return result, fmt.Errorf("photo: %s not found", logName)
	}

	if fs.GetFileFormat(fileName) == fs.FormatJpeg {
		return OpenJpeg(fileName)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("photo: %s in %s (decode panic)\nstack: %s", r, logName, debug.Stack())
		}
	}()

	return imaging.Open(fileName, imaging.AutoOrientation(true))
}

// OpenJpeg loads a JPEG image from disk, converts Display P3 colors to sRGB, and rotates it if necessary.
func OpenJpeg(fileName string) (result image.Image, err error) {
	if fileName == "" {
		return result, fmt.Errorf("photo: filename missing")
	}

	logName := sanitize.Log(filepath.Base(fileName))

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("photo: %s in %s (decode panic)\nstack: %s", r, logName, debug.Stack())
		}
	}()

	// Open file.
	fileReader, err := os.Open(fileName)

	if err != nil {
		return result, err
	}

	defer fileReader.Close()

	return decodeJpeg(fileReader, logName)
}

// decodeJpeg decodes a JPEG stream with Exif orientation and converts its colors to sRGB if needed.
func decodeJpeg(r io.ReadSeeker, logName string) (image.Image, error) {
	// Read color metadata.
	md, imgStream, err := autometa.Load(r)

	if err != nil {
		log.Warnf("photo: %s in %s (read color metadata)", err, logName)

		if _, err = r.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}

		return imaging.Decode(r, imaging.AutoOrientation(true))
	}

	img, err := imaging.Decode(imgStream, imaging.AutoOrientation(true))

	if err != nil {
		return nil, err
	}

	// Read ICC profile and convert colors if possible.
	if md != nil {
		if iccProfile, err := md.ICCProfile(); err != nil || iccProfile == nil {
			log.Tracef("photo: %s has no color profile", logName)
		} else if profile, err := iccProfile.Description(); err == nil && profile != "" {
			img = ConvertColors(img, profile, logName)
		}
	}

	return img, nil
}

// ConvertColors converts an image with the given ICC profile description to sRGB if the profile is supported.
func ConvertColors(img image.Image, profile, logName string) image.Image {
	log.Tracef("photo: %s has color profile %s", logName, sanitize.Log(profile))

	switch {
	case colors.ProfileDisplayP3.Equal(profile):
		log.Debugf("photo: converting %s from %s to sRGB", logName, colors.ProfileDisplayP3)
		return colors.ToSRGB(img, colors.ProfileDisplayP3)
	default:
		return img
	}
}

// Decode decodes an image from a reader and rotates it according to its Exif orientation.
// JPEG colors are converted to sRGB like in OpenJpeg.
func Decode(r io.Reader) (result image.Image, format fs.FileFormat, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("photo: %s (decode panic)", p)
		}
	}()

	data, err := io.ReadAll(r)

	if err != nil {
		return result, fs.FormatOther, fmt.Errorf("photo: %s", err)
	}

	_, name, err := image.DecodeConfig(bytes.NewReader(data))

	if err != nil {
		return result, fs.FormatOther, fmt.Errorf("photo: %s", err)
	}

	format = FormatByName(name)

	if format == fs.FormatJpeg {
		result, err = decodeJpeg(bytes.NewReader(data), "upload")
	} else {
		result, err = imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	}

	if err != nil {
		return result, fs.FormatOther, fmt.Errorf("photo: %s", err)
	}

	return result, format, nil
}

// FormatByName returns the file format for an image.Decode format name.
func FormatByName(name string) fs.FileFormat {
	switch name {
	case "jpeg":
		return fs.FormatJpeg
	case "png":
		return fs.FormatPng
	case "gif":
		return fs.FormatGif
	case "webp":
		return fs.FormatWebp
	case "bmp":
		return fs.FormatBitmap
	case "tiff":
		return fs.FormatTiff
	default:
		return fs.FormatOther
	}
}
