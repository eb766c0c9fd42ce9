package photo

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/photoprism/emojify/pkg/fs"
	"github.com/photoprism/emojify/pkg/sanitize"
)

// Save writes an image to disk, using the format that matches the file extension.
func Save(img image.Image, fileName string, quality int) error {
	format := fs.GetFileFormat(fileName)

	if !format.Writable() {
		return fmt.Errorf("photo: can't write %s, unsupported format", sanitize.Log(filepath.Base(fileName)))
	}

	if err := os.MkdirAll(filepath.Dir(fileName), os.ModePerm); err != nil {
		return fmt.Errorf("photo: %s", err)
	}

	f, err := os.Create(fileName)

	if err != nil {
		return fmt.Errorf("photo: %s", err)
	}

	if err = Encode(f, img, format, quality); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes an image in the given format. Formats that can't be written are encoded as JPEG.
func Encode(w io.Writer, img image.Image, format fs.FileFormat, quality int) error {
	if quality <= 0 || quality > 100 {
		quality = JpegQuality
	}

	var f imaging.Format

	switch format {
	case fs.FormatPng:
		f = imaging.PNG
	case fs.FormatGif:
		f = imaging.GIF
	case fs.FormatBitmap:
		f = imaging.BMP
	case fs.FormatTiff:
		f = imaging.TIFF
	default:
		f = imaging.JPEG
	}

	if err := imaging.Encode(w, img, f, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("photo: %s (encode %s)", err, f)
	}

	return nil
}

// OutputFormat returns the format results for a source file are written in.
func OutputFormat(format fs.FileFormat) fs.FileFormat {
	if format.Writable() {
		return format
	}

	return fs.FormatJpeg
}

// MimeType returns the MIME type of the format images are encoded in.
func MimeType(format fs.FileFormat) string {
	switch OutputFormat(format) {
	case fs.FormatPng:
		return "image/png"
	case fs.FormatGif:
		return "image/gif"
	case fs.FormatBitmap:
		return "image/bmp"
	case fs.FormatTiff:
		return "image/tiff"
	default:
		return "image/jpeg"
	}
}
