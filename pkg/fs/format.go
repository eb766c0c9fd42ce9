package fs

import (
	"path/filepath"
	"strings"
)

// FileFormat represents an image file format.
type FileFormat string

const (
	FormatJpeg   FileFormat = "jpg"
	FormatPng    FileFormat = "png"
	FormatGif    FileFormat = "gif"
	FormatWebp   FileFormat = "webp"
	FormatBitmap FileFormat = "bmp"
	FormatTiff   FileFormat = "tiff"
	FormatOther  FileFormat = ""
)

// FormatExt maps lower-case file extensions to formats.
var FormatExt = map[string]FileFormat{
	".jpg":  FormatJpeg,
	".jpeg": FormatJpeg,
	".jpe":  FormatJpeg,
	".png":  FormatPng,
	".gif":  FormatGif,
	".webp": FormatWebp,
	".bmp":  FormatBitmap,
	".tif":  FormatTiff,
	".tiff": FormatTiff,
}

// GetFileFormat returns the image format of a file based on its extension.
func GetFileFormat(fileName string) FileFormat {
	if f, ok := FormatExt[strings.ToLower(filepath.Ext(fileName))]; ok {
		return f
	}

	return FormatOther
}

// String returns the format as string.
func (f FileFormat) String() string {
	return string(f)
}

// Ext returns the default file extension including the leading dot.
func (f FileFormat) Ext() string {
	if f == FormatOther {
		return ""
	}

	return "." + string(f)
}

// Writable tests if images can be encoded in this format.
func (f FileFormat) Writable() bool {
	switch f {
	case FormatJpeg, FormatPng, FormatGif, FormatBitmap, FormatTiff:
		return true
	default:
		return false
	}
}

// Is tests if the file has the given format.
func (f FileFormat) Is(fileName string) bool {
	return GetFileFormat(fileName) == f
}
