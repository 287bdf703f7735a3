package ports

import "context"

// Muxer wraps the external media tool (ffmpeg) used to move audio in
// and out of containers. The editing core never touches containers
// itself; each call is a single blocking tool invocation whose stderr
// is surfaced verbatim on failure.
type Muxer interface {
	// ExtractAudio pulls the audio track out of a video into an MP3.
	ExtractAudio(ctx context.Context, videoPath, audioPath string) error

	// ToWAV converts any audio file to PCM WAV, preserving the source
	// sample rate and channel layout.
	ToWAV(ctx context.Context, srcPath, wavPath string) error

	// Encode converts a WAV file to the distribution format implied by
	// dstPath's extension, at 192 kbit/s.
	Encode(ctx context.Context, wavPath, dstPath string) error

	// ReplaceAudio remuxes the video with cleanAudio as the sole audio
	// stream, copying the video stream unchanged and trimming to the
	// shorter of the two.
	ReplaceAudio(ctx context.Context, videoPath, cleanAudioPath, outputPath string) error

	// IsAvailable checks if ffmpeg is installed
	IsAvailable() bool

	// BinaryPath returns the path to the ffmpeg binary
	BinaryPath() string
}

// VideoDownloader fetches URL-sourced inputs with yt-dlp.
type VideoDownloader interface {
	// Download fetches the video at url into destDir and returns the
	// path of the downloaded file.
	Download(ctx context.Context, url string, destDir string) (string, error)

	// IsAvailable checks if yt-dlp is installed
	IsAvailable() bool

	// BinaryPath returns the path to the yt-dlp binary
	BinaryPath() string
}
