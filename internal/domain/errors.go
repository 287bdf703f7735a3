package domain

import "errors"

var (
	// Input errors
	ErrFileNotFound      = errors.New("input file not found")
	ErrInvalidMode       = errors.New("invalid redaction mode (use 'bleep' or 'silence')")
	ErrInvalidTranscript = errors.New("invalid transcript")
	ErrNoWordTimestamps  = errors.New("transcript has no word-level timestamps")

	// Transcription errors
	ErrTranscriptionFailed = errors.New("transcription failed")
	ErrModelNotFound       = errors.New("model not found")

	// Editing errors
	ErrBadInterval = errors.New("edit interval has non-positive duration")

	// Cache errors
	ErrCacheExpired = errors.New("cache expired")
	ErrCacheMiss    = errors.New("cache miss")

	// Dependency errors
	ErrFFmpegNotFound = errors.New("ffmpeg not found")
	ErrYtDlpNotFound  = errors.New("yt-dlp not found")
)
