package ports

import (
	"context"
	"time"

	"github.com/devbush/podbleep/internal/domain"
)

// CachedTranscript is one stored transcription result, keyed by the
// audio content hash plus model name.
type CachedTranscript struct {
	Transcript *domain.Transcript `json:"transcript"`
	AudioHash  string             `json:"audio_hash"`
	Model      string             `json:"model"`
	CreatedAt  time.Time          `json:"created_at"`
	ExpiresAt  time.Time          `json:"expires_at"`
}

// TranscriptCache stores transcription results so re-running the
// bleeper with a different wordlist or mode skips the expensive
// transcription stage.
type TranscriptCache interface {
	Get(ctx context.Context, key string) (*CachedTranscript, error)
	Set(ctx context.Context, key string, item *CachedTranscript) error
	Delete(ctx context.Context, key string) error

	// CleanExpired removes expired entries, returning how many were removed
	CleanExpired(ctx context.Context) (int, error)

	// Clear removes all entries
	Clear(ctx context.Context) error

	// Stats returns entry count and total size in bytes
	Stats(ctx context.Context) (int, int64, error)
}
