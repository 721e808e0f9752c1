package assets

import (
	stderrors "errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// DefaultFontName is the name the built-in bitmap face is registered under.
const DefaultFontName = "default"

// FontRegistry maps font names to faces.
type FontRegistry struct {
	mu          sync.RWMutex
	faces       map[string]font.Face
	defaultName string
}

// NewFontRegistry returns a registry holding only the built-in face.
func NewFontRegistry() *FontRegistry {
	return &FontRegistry{
		faces:       map[string]font.Face{DefaultFontName: basicfont.Face7x13},
		defaultName: DefaultFontName,
	}
}

// Register adds or replaces a named face.
func (r *FontRegistry) Register(name string, face font.Face) error {
	if name == "" {
		return stderrors.New("font name required")
	}
	if face == nil {
		return fmt.Errorf("font %q: nil face", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.faces[name] = face
	return nil
}

// RegisterTTF parses TrueType or OpenType data and registers a face of the
// given point size at 72 DPI.
func (r *FontRegistry) RegisterTTF(name string, data []byte, size float64) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("font %q: %w", name, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("font %q: %w", name, err)
	}
	return r.Register(name, face)
}

// LoadTTF reads a font file and registers it.
func (r *FontRegistry) LoadTTF(name, path string, size float64) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("font %q: %w", name, err)
	}
	return r.RegisterTTF(name, data, size)
}

// Font looks up a face by name.
func (r *FontRegistry) Font(name string) (font.Face, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	face, ok := r.faces[name]
	return face, ok
}

// SetDefault selects the face returned by DefaultFont.
func (r *FontRegistry) SetDefault(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.faces[name]; !ok {
		return fmt.Errorf("font %q is not registered", name)
	}
	r.defaultName = name
	return nil
}

// DefaultFont returns the default face.
func (r *FontRegistry) DefaultFont() font.Face {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.faces[r.defaultName]
}
