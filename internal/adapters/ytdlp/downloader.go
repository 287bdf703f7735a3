// Package ytdlp wraps the yt-dlp binary for URL-sourced video inputs.
package ytdlp

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/devbush/podbleep/internal/config"
	"github.com/devbush/podbleep/internal/domain"
	"github.com/devbush/podbleep/internal/ports"
)

// Downloader implements ports.VideoDownloader using yt-dlp
type Downloader struct {
	binPath string
}

// NewDownloader creates a new yt-dlp downloader
func NewDownloader(binPath string) *Downloader {
	return &Downloader{binPath: binPath}
}

func binaryName() string {
	if runtime.GOOS == "windows" {
		return "yt-dlp.exe"
	}
	return "yt-dlp"
}

func (d *Downloader) findBinary() string {
	bundled := filepath.Join(config.BinDir(), binaryName())
	if _, err := os.Stat(bundled); err == nil {
		return bundled
	}
	if path, err := exec.LookPath(binaryName()); err == nil {
		return path
	}
	return ""
}

func (d *Downloader) BinaryPath() string {
	if d.binPath != "" {
		return d.binPath
	}
	d.binPath = d.findBinary()
	return d.binPath
}

func (d *Downloader) IsAvailable() bool {
	return d.BinaryPath() != ""
}

// Download fetches the video at url into destDir as MP4 and returns
// the downloaded file's path.
func (d *Downloader) Download(ctx context.Context, url string, destDir string) (string, error) {
	bin := d.BinaryPath()
	if bin == "" {
		return "", domain.ErrYtDlpNotFound
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create destination directory: %w", err)
	}

	outputTemplate := filepath.Join(destDir, "%(title)s.%(ext)s")

	args := []string{
		"--format", "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best",
		"--merge-output-format", "mp4",
		"--output", outputTemplate,
		"--no-playlist",
		url,
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("yt-dlp failed: %w\n%s", err, strings.TrimSpace(string(out)))
	}

	entries, err := os.ReadDir(destDir)
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".mp4" {
			return filepath.Join(destDir, e.Name()), nil
		}
	}
	return "", fmt.Errorf("yt-dlp reported success but no mp4 found in %s", destDir)
}

// Ensure Downloader implements interface
var _ ports.VideoDownloader = (*Downloader)(nil)
