package sidecar

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrRead marks a sidecar file that exists but cannot be read or parsed.
// Absence is not an error; see Resolution.Found.
var ErrRead = errors.New("sidecar read error")

// DefaultExtension is the darktable sidecar extension.
const DefaultExtension = ".xmp"

// Locator derives sidecar paths from image paths.
type Locator struct {
	Extension string
}

// Resolution is the outcome of looking for a sidecar on disk.
type Resolution struct {
	Path  string
	Found bool
}

// PathFor returns the expected sidecar path for an image and its duplicate
// version. Version 0 has no suffix; versions above 0 insert _NN before the
// image extension.
func (l Locator) PathFor(imagePath string, version int) string {
	ext := l.Extension
	if ext == "" {
		ext = DefaultExtension
	}

	dir := filepath.Dir(imagePath)
	base := filepath.Base(imagePath)
	imageExt := filepath.Ext(base)
	stem := strings.TrimSuffix(base, imageExt)
	if version > 0 {
		stem = fmt.Sprintf("%s_%02d", stem, version)
	}
	return filepath.Join(dir, stem+imageExt+ext)
}

// Resolve derives the sidecar path and checks for its existence. Absence is a
// valid result, not an error.
func (l Locator) Resolve(imagePath string, version int) (Resolution, error) {
	path := l.PathFor(imagePath, version)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Resolution{Path: path}, nil
		}
		return Resolution{Path: path}, fmt.Errorf("%w: stat %s: %v", ErrRead, path, err)
	}
	if info.IsDir() {
		return Resolution{Path: path}, fmt.Errorf("%w: %s is a directory", ErrRead, path)
	}
	return Resolution{Path: path, Found: true}, nil
}

// ReadFile opens a sidecar strictly for reading and parses its metadata.
func ReadFile(path string) (*Sidecar, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrRead, path, err)
	}
	defer file.Close()

	sc, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrRead, path, err)
	}
	return sc, nil
}
