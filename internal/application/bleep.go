package application

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/devbush/podbleep/internal/audio"
	"github.com/devbush/podbleep/internal/domain"
	"github.com/devbush/podbleep/internal/ports"
	"github.com/devbush/podbleep/internal/redact"
	"github.com/devbush/podbleep/internal/wordlist"
)

// Status describes how a run ended.
type Status int

const (
	// StatusEdited means banned words were found and a clean file was written.
	StatusEdited Status = iota
	// StatusEmptyWordlist means no usable words were loaded; nothing to do.
	StatusEmptyWordlist
	// StatusNoMatches means the transcript contained no banned words; no
	// output file is produced.
	StatusNoMatches
)

// BleepOptions configures one redaction run.
type BleepOptions struct {
	Mode         audio.Mode
	Model        string
	Language     string
	PadMs        int // interval padding; zero means none, negative selects the default
	WordlistPath string
	OutputPath   string // empty derives name_clean.ext next to the input
	NoCache      bool
}

// BleepResult reports what a run did.
type BleepResult struct {
	Status       Status
	WordsLoaded  int
	Hits         []redact.Hit
	Replacements int
	OutputPath   string
	FromCache    bool
}

// BleepService orchestrates the redaction pipeline: wordlist ->
// transcription -> matching -> consolidation -> buffer editing ->
// encoding. Stages run strictly in sequence; a failed run aborts with
// no partial output.
type BleepService struct {
	transcriber ports.Transcriber
	muxer       ports.Muxer
	cache       ports.TranscriptCache
	cacheTTL    time.Duration
}

// NewBleepService creates a new bleep service
func NewBleepService(
	transcriber ports.Transcriber,
	muxer ports.Muxer,
	cache ports.TranscriptCache,
	cacheTTL time.Duration,
) *BleepService {
	return &BleepService{
		transcriber: transcriber,
		muxer:       muxer,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

// Run redacts banned words from the audio file at inputPath.
func (s *BleepService) Run(ctx context.Context, inputPath string, opts BleepOptions) (*BleepResult, error) {
	if _, err := os.Stat(inputPath); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, inputPath)
	}

	banned, err := wordlist.Load(opts.WordlistPath)
	if err != nil {
		return nil, fmt.Errorf("loading wordlist: %w", err)
	}
	if banned.Len() == 0 {
		log.Warn().Str("wordlist", opts.WordlistPath).Msg("wordlist is empty, nothing to do")
		return &BleepResult{Status: StatusEmptyWordlist}, nil
	}
	log.Info().Int("words", banned.Len()).Msg("wordlist loaded")

	transcript, fromCache, err := s.transcribe(ctx, inputPath, opts)
	if err != nil {
		return nil, err
	}
	if err := transcript.Validate(); err != nil {
		return nil, fmt.Errorf("transcription output: %w", err)
	}

	pad := opts.PadMs
	if pad < 0 {
		pad = redact.DefaultPadMs
	}

	hits := redact.Match(transcript, banned, pad)
	for _, h := range hits {
		log.Info().Str("word", h.Word).Str("at", domain.FormatTimestamp(h.At)).Msg("banned word found")
	}
	if len(hits) == 0 {
		log.Info().Msg("no banned words found, no changes made")
		return &BleepResult{
			Status:      StatusNoMatches,
			WordsLoaded: banned.Len(),
			FromCache:   fromCache,
		}, nil
	}

	tmpDir, err := os.MkdirTemp("", "podbleep")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	wavPath := filepath.Join(tmpDir, "source.wav")
	if err := s.muxer.ToWAV(ctx, inputPath, wavPath); err != nil {
		return nil, fmt.Errorf("converting to PCM: %w", err)
	}

	buf, err := audio.DecodeWAV(wavPath)
	if err != nil {
		return nil, fmt.Errorf("loading audio: %w", err)
	}

	plan := redact.Consolidate(hits, buf.LengthMs())
	replacements, err := audio.ApplyPlan(buf, plan, opts.Mode)
	if err != nil {
		return nil, fmt.Errorf("editing audio: %w", err)
	}

	editedPath := filepath.Join(tmpDir, "edited.wav")
	if err := buf.EncodeWAV(editedPath); err != nil {
		return nil, fmt.Errorf("writing edited audio: %w", err)
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = CleanOutputPath(inputPath)
	}
	if err := s.muxer.Encode(ctx, editedPath, outputPath); err != nil {
		return nil, fmt.Errorf("encoding output: %w", err)
	}

	log.Info().Int("replacements", replacements).Str("output", outputPath).Msg("clean file saved")

	return &BleepResult{
		Status:       StatusEdited,
		WordsLoaded:  banned.Len(),
		Hits:         hits,
		Replacements: replacements,
		OutputPath:   outputPath,
		FromCache:    fromCache,
	}, nil
}

// transcribe runs the transcriber, going through the transcript cache
// unless bypassed. Cache failures are non-fatal.
func (s *BleepService) transcribe(ctx context.Context, inputPath string, opts BleepOptions) (*domain.Transcript, bool, error) {
	model := opts.Model
	if model == "" {
		model = "base"
	}

	var key string
	if s.cache != nil {
		if k, err := cacheKey(inputPath, model); err == nil {
			key = k
		}
	}

	if key != "" && !opts.NoCache {
		if item, err := s.cache.Get(ctx, key); err == nil {
			log.Debug().Str("model", model).Msg("transcript loaded from cache")
			return item.Transcript, true, nil
		}
	}

	log.Info().Str("model", model).Msg("transcribing (this may take a while for long files)")
	transcript, err := s.transcriber.Transcribe(ctx, inputPath, ports.TranscribeOpts{
		Model:    model,
		Language: opts.Language,
	})
	if err != nil {
		return nil, false, err
	}

	if key != "" {
		now := time.Now()
		_ = s.cache.Set(ctx, key, &ports.CachedTranscript{
			Transcript: transcript,
			AudioHash:  strings.SplitN(key, "_", 2)[0],
			Model:      model,
			CreatedAt:  now,
			ExpiresAt:  now.Add(s.cacheTTL),
		})
	}

	return transcript, false, nil
}

// cacheKey derives the transcript cache key for an audio file and
// model: the SHA-256 of the file content plus the model name, so the
// same audio re-run with a different model transcribes fresh.
func cacheKey(audioPath, model string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x_%s", h.Sum(nil), model), nil
}

// CleanOutputPath derives the output name: input name.ext becomes
// name_clean.ext in the same directory.
func CleanOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)
	return base + "_clean" + ext
}
