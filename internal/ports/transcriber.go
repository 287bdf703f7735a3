package ports

import (
	"context"

	"github.com/devbush/podbleep/internal/domain"
)

// Model represents a Whisper model
type Model struct {
	Name        string
	Size        int64 // bytes
	Description string
	Downloaded  bool
}

// TranscribeOpts configures transcription behavior
type TranscribeOpts struct {
	Model    string
	Language string // empty for auto-detect
}

// Transcriber handles speech-to-text conversion. Implementations must
// produce word-level timestamps; the editing pipeline rejects
// segment-only transcripts.
type Transcriber interface {
	// Transcribe converts an audio file to a transcript
	Transcribe(ctx context.Context, audioPath string, opts TranscribeOpts) (*domain.Transcript, error)

	// AvailableModels returns list of available models
	AvailableModels() []Model

	// IsModelDownloaded checks if a model is available locally
	IsModelDownloaded(model string) bool

	// DownloadModel downloads a model with progress callback
	DownloadModel(ctx context.Context, model string, progress func(downloaded, total int64)) error

	// DeleteModel removes a downloaded model
	DeleteModel(model string) error
}
