// Package cache stores transcription results on disk so repeat runs
// against the same audio skip the expensive transcription stage.
package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/devbush/podbleep/internal/domain"
	"github.com/devbush/podbleep/internal/ports"
)

type FileCache struct {
	baseDir string
	ttl     time.Duration
}

func NewFileCache(baseDir string, ttl time.Duration) *FileCache {
	return &FileCache{
		baseDir: baseDir,
		ttl:     ttl,
	}
}

func (c *FileCache) entryPath(key string) string {
	return filepath.Join(c.baseDir, key+".json")
}

func (c *FileCache) Get(ctx context.Context, key string) (*ports.CachedTranscript, error) {
	data, err := os.ReadFile(c.entryPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrCacheMiss
		}
		return nil, err
	}

	var item ports.CachedTranscript
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, err
	}

	if time.Now().After(item.ExpiresAt) {
		return nil, domain.ErrCacheExpired
	}

	return &item, nil
}

func (c *FileCache) Set(ctx context.Context, key string, item *ports.CachedTranscript) error {
	if err := os.MkdirAll(c.baseDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(item, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.entryPath(key), data, 0644)
}

func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.entryPath(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (c *FileCache) CleanExpired(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(c.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	removed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		key := strings.TrimSuffix(e.Name(), ".json")
		if _, err := c.Get(ctx, key); err == domain.ErrCacheExpired {
			if err := c.Delete(ctx, key); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}

func (c *FileCache) Clear(ctx context.Context) error {
	entries, err := os.ReadDir(c.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(c.baseDir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (c *FileCache) Stats(ctx context.Context) (int, int64, error) {
	entries, err := os.ReadDir(c.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, 0, nil
		}
		return 0, 0, err
	}

	count := 0
	var size int64
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		count++
		if info, err := e.Info(); err == nil {
			size += info.Size()
		}
	}
	return count, size, nil
}

// Ensure FileCache implements interface
var _ ports.TranscriptCache = (*FileCache)(nil)
