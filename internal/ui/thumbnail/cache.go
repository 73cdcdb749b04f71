package thumbnail

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const (
	cacheDirName  = "showcase/thumbnails"
	cacheMaxAge   = 30 * 24 * time.Hour // 30 days
	pruneInterval = 24 * time.Hour
)

// Cache provides disk-based caching for resized card images.
type Cache struct {
	dir        string
	lastPruned time.Time
}

// NewCache creates a disk cache under baseDir, or under the XDG cache
// home when baseDir is empty.
func NewCache(baseDir string) (*Cache, error) {
	if baseDir == "" {
		baseDir = xdg.CacheHome
	}

	dir := filepath.Join(baseDir, cacheDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	c := &Cache{dir: dir}

	// Prune old entries in background
	go c.pruneOldEntries()

	return c, nil
}

// cacheKey identifies one version of a file at specific dimensions.
func cacheKey(path string, modTime time.Time, width, height int) string {
	data := fmt.Sprintf("%s:%d:%d:%d", path, modTime.UnixNano(), width, height)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

// Get retrieves cached PNG data. Returns nil if not cached.
func (c *Cache) Get(key string) []byte {
	if c == nil {
		return nil
	}

	path := filepath.Join(c.dir, key+".png")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	// Touch the file to update mtime (keeps frequently used entries fresh)
	now := time.Now()
	_ = os.Chtimes(path, now, now) //nolint:errcheck // best-effort

	return data
}

// Put stores PNG data under key.
func (c *Cache) Put(key string, data []byte) error {
	if c == nil {
		return nil
	}
	return os.WriteFile(filepath.Join(c.dir, key+".png"), data, 0o600)
}

// pruneOldEntries removes cache entries older than cacheMaxAge.
func (c *Cache) pruneOldEntries() {
	if c == nil {
		return
	}

	// Don't prune too frequently
	if time.Since(c.lastPruned) < pruneInterval {
		return
	}
	c.lastPruned = time.Now()

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}

	cutoff := time.Now().Add(-cacheMaxAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(c.dir, entry.Name())) //nolint:errcheck // best-effort cleanup
		}
	}
}
