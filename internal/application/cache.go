package application

import (
	"context"

	"github.com/devbush/podbleep/internal/ports"
)

// CacheStats holds transcript cache statistics
type CacheStats struct {
	ItemCount int
	TotalSize int64
}

// CacheService handles transcript cache management operations
type CacheService struct {
	cache ports.TranscriptCache
}

// NewCacheService creates a new cache service
func NewCacheService(cache ports.TranscriptCache) *CacheService {
	return &CacheService{cache: cache}
}

// Stats returns cache statistics
func (s *CacheService) Stats(ctx context.Context) (*CacheStats, error) {
	count, size, err := s.cache.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &CacheStats{ItemCount: count, TotalSize: size}, nil
}

// Clear removes all cached transcripts
func (s *CacheService) Clear(ctx context.Context) error {
	return s.cache.Clear(ctx)
}

// CleanExpired removes expired entries, returning how many were removed
func (s *CacheService) CleanExpired(ctx context.Context) (int, error) {
	return s.cache.CleanExpired(ctx)
}
