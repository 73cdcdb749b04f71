// Package thumbnail draws local card images as half-block text art.
package thumbnail

import (
	"bytes"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG decoder for card images
	"image/png"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// upperHalf is drawn with the top pixel as foreground and the bottom
// pixel as background, so one cell shows two vertical pixels.
const upperHalf = "▀"

// Renderer turns image files into blocks of styled lines.
// Blocks are memoized per file version and size; resized images are
// also kept in the optional disk cache.
type Renderer struct {
	mu     sync.RWMutex
	cache  *Cache
	blocks map[string][]string
}

// New creates a renderer. cache may be nil.
func New(cache *Cache) *Renderer {
	return &Renderer{
		cache:  cache,
		blocks: make(map[string][]string),
	}
}

// Block returns the image at ref fitted into width x height cells,
// aspect ratio kept. All lines have the same width. Returns nil when ref
// is not a readable local image.
func (r *Renderer) Block(ref string, width, height int) []string {
	if r == nil || width <= 0 || height <= 0 || !IsLocal(ref) {
		return nil
	}
	info, err := os.Stat(ref)
	if err != nil || info.IsDir() {
		return nil
	}

	key := cacheKey(ref, info.ModTime(), width, height)
	r.mu.RLock()
	lines, ok := r.blocks[key]
	r.mu.RUnlock()
	if ok {
		return lines
	}

	if img := r.load(ref, key, width, height); img != nil {
		lines = halfBlocks(img)
	}

	r.mu.Lock()
	r.blocks[key] = lines
	r.mu.Unlock()
	return lines
}

// IsLocal reports whether ref names a file rather than a URL.
func IsLocal(ref string) bool {
	return ref != "" && !strings.Contains(ref, "://")
}

func (r *Renderer) load(path, key string, width, height int) image.Image {
	if data := r.cache.Get(key); data != nil {
		if img, err := png.Decode(bytes.NewReader(data)); err == nil {
			return img
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		log.Printf("thumbnail %s: %v", path, err)
		return nil
	}

	resized := resize.Thumbnail(uint(width), uint(height*2), img, resize.Lanczos3) //nolint:gosec // card sizes are small
	if data, err := encodePNG(resized); err == nil {
		_ = r.cache.Put(key, data) //nolint:errcheck // best-effort
	}
	return resized
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// halfBlocks draws two pixel rows per line.
func halfBlocks(img image.Image) []string {
	b := img.Bounds()
	lines := make([]string, 0, (b.Dy()+1)/2)
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		var sb strings.Builder
		for x := b.Min.X; x < b.Max.X; x++ {
			top := termColor(img.At(x, y))
			var bottom lipgloss.TerminalColor = lipgloss.NoColor{}
			if y+1 < b.Max.Y {
				bottom = termColor(img.At(x, y+1))
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(top).Background(bottom).Render(upperHalf))
		}
		lines = append(lines, sb.String())
	}
	return lines
}

func termColor(c color.Color) lipgloss.TerminalColor {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(cc.Hex())
}
