package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/devbush/podbleep/internal/domain"
	"github.com/devbush/podbleep/internal/ports"
)

// VideoService redacts banned words from a video's audio track: the
// track is extracted, run through the audio pipeline, and remuxed
// against the untouched video stream.
type VideoService struct {
	bleeper    *BleepService
	downloader ports.VideoDownloader
	muxer      ports.Muxer
}

// NewVideoService creates a new video service
func NewVideoService(bleeper *BleepService, downloader ports.VideoDownloader, muxer ports.Muxer) *VideoService {
	return &VideoService{
		bleeper:    bleeper,
		downloader: downloader,
		muxer:      muxer,
	}
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Run redacts the video named by input, which is a local file path or
// a URL fetched with yt-dlp. All intermediates live in a per-run temp
// directory removed on exit, success or failure.
func (s *VideoService) Run(ctx context.Context, input string, opts BleepOptions) (*BleepResult, error) {
	if isURL(input) && !s.downloader.IsAvailable() {
		return nil, domain.ErrYtDlpNotFound
	}

	tmpDir, err := os.MkdirTemp("", "podbleep_video")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	var videoPath, outputPath string
	if isURL(input) {
		log.Info().Str("url", input).Msg("downloading video")
		videoPath, err = s.downloader.Download(ctx, input, tmpDir)
		if err != nil {
			return nil, fmt.Errorf("downloading video: %w", err)
		}
		// URL-sourced output lands in the working directory
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
		outputPath = filepath.Join(cwd, base+"_clean.mp4")
	} else {
		if _, err := os.Stat(input); err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, input)
		}
		videoPath = input
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + "_clean.mp4"
	}

	log.Info().Msg("extracting audio from video")
	trackPath := filepath.Join(tmpDir, "audio.mp3")
	if err := s.muxer.ExtractAudio(ctx, videoPath, trackPath); err != nil {
		return nil, fmt.Errorf("extracting audio: %w", err)
	}

	audioOpts := opts
	audioOpts.OutputPath = filepath.Join(tmpDir, "audio_clean.mp3")

	result, err := s.bleeper.Run(ctx, trackPath, audioOpts)
	if err != nil {
		return nil, err
	}
	if result.Status != StatusEdited {
		// Nothing redacted: no output video is produced
		result.OutputPath = ""
		return result, nil
	}

	log.Info().Msg("merging clean audio back into video")
	if err := s.muxer.ReplaceAudio(ctx, videoPath, result.OutputPath, outputPath); err != nil {
		return nil, fmt.Errorf("remuxing video: %w", err)
	}

	result.OutputPath = outputPath
	return result, nil
}
