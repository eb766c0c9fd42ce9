package fs

import (
	"os"
	"path/filepath"
	"strings"
)

// FileExists returns true if a file exists at the given path and is not a directory.
func FileExists(fileName string) bool {
	if fileName == "" {
		return false
	}

	info, err := os.Stat(fileName)

	return err == nil && !info.IsDir()
}

// PathExists returns true if a directory exists at the given path.
func PathExists(path string) bool {
	if path == "" {
		return false
	}

	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}

// StripExt removes the file extension from a file name, if any.
func StripExt(fileName string) string {
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}

// RelatedName returns a file name in dir that shares the base name of fileName,
// with suffix and the extension of format appended.
func RelatedName(fileName, dir, suffix string, format FileFormat) string {
	base := StripExt(filepath.Base(fileName))

	if dir == "" {
		dir = filepath.Dir(fileName)
	}

	return filepath.Join(dir, base+suffix+format.Ext())
}
