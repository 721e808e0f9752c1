package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/go-drift/anchorui/pkg/graphics"
	"github.com/go-drift/anchorui/pkg/style"
)

// ImageCache shares decoded images between widgets. Entries are counted by
// path and dropped when the last reference is released.
type ImageCache struct {
	mu      sync.Mutex
	root    string
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	img  image.Image
	refs int
}

// NewImageCache creates a cache resolving relative paths against root.
func NewImageCache(root string) *ImageCache {
	return &ImageCache{
		root:    root,
		entries: make(map[string]*cacheEntry),
	}
}

// Put registers an already decoded image under path. The entry stays
// resident until it has been acquired and fully released.
func (c *ImageCache) Put(path string, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = &cacheEntry{img: img}
}

// Acquire returns a texture for path, decoding the file on first use.
func (c *ImageCache) Acquire(path string) (*Texture, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[path]
	if !ok {
		img, err := c.decode(path)
		if err != nil {
			return nil, err
		}
		entry = &cacheEntry{img: img}
		c.entries[path] = entry
	}
	entry.refs++
	return &Texture{path: path, img: entry.img, cache: c}, nil
}

// Release drops one reference to path.
func (c *ImageCache) Release(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[path]
	if !ok {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(c.entries, path)
	}
}

// Refs reports how many textures currently reference path.
func (c *ImageCache) Refs(path string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.entries[path]; ok {
		return entry.refs
	}
	return 0
}

// Len returns the number of resident images.
func (c *ImageCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *ImageCache) decode(path string) (image.Image, error) {
	full := path
	if c.root != "" && !filepath.IsAbs(path) {
		full = filepath.Join(c.root, path)
	}
	f, err := os.Open(full)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", full, err)
	}
	return img, nil
}

// LoadImage acquires the image a declaration names, either as its own
// value or through a "source" child.
func (c *ImageCache) LoadImage(node *style.Node) (Image, error) {
	path, err := sourcePath(node)
	if err != nil {
		return nil, err
	}
	tex, err := c.Acquire(path)
	if err != nil {
		return nil, style.Errorf(node, "cannot load image: %v", err)
	}
	return tex, nil
}

// LoadBorderImage acquires a nine-slice image. The "border" value sets all
// four insets; "border.top", "border.right", "border.bottom" and
// "border.left" override single edges.
func (c *ImageCache) LoadBorderImage(node *style.Node) (Image, error) {
	path, err := sourcePath(node)
	if err != nil {
		return nil, err
	}

	var border graphics.Margins
	if b := node.Child("border"); b != nil {
		if b.HasValue() {
			v, err := b.AsInt()
			if err != nil {
				return nil, err
			}
			border = graphics.Margins{Top: v, Right: v, Bottom: v, Left: v}
		}
		for _, edge := range []struct {
			tag string
			dst *int
		}{
			{"top", &border.Top},
			{"right", &border.Right},
			{"bottom", &border.Bottom},
			{"left", &border.Left},
		} {
			if n := b.Child(edge.tag); n != nil {
				v, err := n.AsInt()
				if err != nil {
					return nil, err
				}
				*edge.dst = v
			}
		}
	}

	tex, err := c.Acquire(path)
	if err != nil {
		return nil, style.Errorf(node, "cannot load image: %v", err)
	}
	return &BorderImage{Texture: tex, Border: border}, nil
}

func sourcePath(node *style.Node) (string, error) {
	if node.HasValue() {
		return node.AsString()
	}
	src := node.Child("source")
	if src == nil {
		return "", style.Errorf(node, "image declaration has no source")
	}
	return src.AsString()
}
