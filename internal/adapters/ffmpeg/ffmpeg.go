// Package ffmpeg wraps the ffmpeg binary for the container work the
// editing core delegates: extracting audio, PCM conversion, encoding,
// and remuxing the clean track back into a video.
package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/devbush/podbleep/internal/config"
	"github.com/devbush/podbleep/internal/domain"
	"github.com/devbush/podbleep/internal/ports"
)

// Muxer implements ports.Muxer by shelling out to ffmpeg.
type Muxer struct {
	binPath string
}

// NewMuxer creates a new ffmpeg muxer
func NewMuxer() *Muxer {
	return &Muxer{}
}

func binaryName() string {
	if runtime.GOOS == "windows" {
		return "ffmpeg.exe"
	}
	return "ffmpeg"
}

func (m *Muxer) findBinary() string {
	bundled := filepath.Join(config.BinDir(), binaryName())
	if _, err := exec.LookPath(bundled); err == nil {
		return bundled
	}
	if path, err := exec.LookPath(binaryName()); err == nil {
		return path
	}
	return ""
}

func (m *Muxer) BinaryPath() string {
	if m.binPath != "" {
		return m.binPath
	}
	m.binPath = m.findBinary()
	return m.binPath
}

func (m *Muxer) IsAvailable() bool {
	return m.BinaryPath() != ""
}

// run executes ffmpeg with the given arguments, surfacing combined
// output verbatim when the tool reports failure.
func (m *Muxer) run(ctx context.Context, args ...string) error {
	bin := m.BinaryPath()
	if bin == "" {
		return domain.ErrFFmpegNotFound
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg %s: %w\n%s", args[len(args)-1], err, strings.TrimSpace(string(out)))
	}
	return nil
}

// ExtractAudio pulls the audio track out of a video into an MP3.
func (m *Muxer) ExtractAudio(ctx context.Context, videoPath, audioPath string) error {
	return m.run(ctx,
		"-y",
		"-i", videoPath,
		"-vn",
		"-acodec", "libmp3lame",
		"-q:a", "2",
		audioPath,
	)
}

// ToWAV converts any audio file to PCM WAV. Sample rate and channel
// layout are left untouched so the edited output matches the source.
func (m *Muxer) ToWAV(ctx context.Context, srcPath, wavPath string) error {
	return m.run(ctx,
		"-y",
		"-i", srcPath,
		"-acodec", "pcm_s16le",
		wavPath,
	)
}

// Encode converts a WAV file to the distribution format implied by the
// destination extension, at 192 kbit/s.
func (m *Muxer) Encode(ctx context.Context, wavPath, dstPath string) error {
	return m.run(ctx,
		"-y",
		"-i", wavPath,
		"-b:a", "192k",
		dstPath,
	)
}

// ReplaceAudio remuxes the video with the clean audio as the sole audio
// stream. The video stream is copied, never re-encoded, and the output
// is trimmed to the shorter of the two streams.
func (m *Muxer) ReplaceAudio(ctx context.Context, videoPath, cleanAudioPath, outputPath string) error {
	return m.run(ctx,
		"-y",
		"-i", videoPath,
		"-i", cleanAudioPath,
		"-c:v", "copy",
		"-map", "0:v:0",
		"-map", "1:a:0",
		"-shortest",
		outputPath,
	)
}

// Ensure Muxer implements interface
var _ ports.Muxer = (*Muxer)(nil)
