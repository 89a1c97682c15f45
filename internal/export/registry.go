// Package export writes the final ant grid to image files.
// Encoders register themselves by format name, so the CLI can pick one
// from a flag or a file extension without hardcoded switches.
package export

import (
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownFormat is returned when no encoder matches a format or extension.
var ErrUnknownFormat = errors.New("export: unknown format")

// Encoder writes an image to w.
type Encoder func(w io.Writer, img image.Image) error

// FormatInfo describes a registered format.
type FormatInfo struct {
	Name       string
	Extensions []string
}

var (
	encoders   = make(map[string]Encoder)
	extensions = make(map[string]string) // ".bmp" -> "bmp"
	mu         sync.RWMutex
)

// Register adds an encoder under name, reachable by each of exts.
// Panics if the name or an extension is already registered.
func Register(name string, exts []string, enc Encoder) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := encoders[name]; exists {
		panic(fmt.Sprintf("export: format %q already registered", name))
	}
	for _, ext := range exts {
		ext = strings.ToLower(ext)
		if owner, exists := extensions[ext]; exists {
			panic(fmt.Sprintf("export: extension %q already registered by %q", ext, owner))
		}
	}

	encoders[name] = enc
	for _, ext := range exts {
		extensions[strings.ToLower(ext)] = name
	}
}

// Lookup returns the encoder registered under name.
func Lookup(name string) (Encoder, error) {
	mu.RLock()
	defer mu.RUnlock()

	enc, ok := encoders[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, name)
	}
	return enc, nil
}

// FormatFor returns the format name registered for the extension of path.
func FormatFor(path string) (string, error) {
	mu.RLock()
	defer mu.RUnlock()

	name, ok := extensions[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", fmt.Errorf("%w for %q", ErrUnknownFormat, path)
	}
	return name, nil
}

// Formats returns all registered formats, sorted by name.
func Formats() []FormatInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FormatInfo, 0, len(encoders))
	for name := range encoders {
		info := FormatInfo{Name: name}
		for ext, owner := range extensions {
			if owner == name {
				info.Extensions = append(info.Extensions, ext)
			}
		}
		sort.Strings(info.Extensions)
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}
