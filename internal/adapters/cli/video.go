package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devbush/podbleep/internal/adapters/cli/tui"
	"github.com/devbush/podbleep/internal/domain"
)

// NewVideoCmd creates the video subcommand
func NewVideoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "video <file-or-url>",
		Short: "Bleep banned words out of a video's audio track",
		Long: `Extracts the audio track from a local video file or a URL
(fetched with yt-dlp), bleeps banned words, and remuxes the clean
audio against the untouched video stream.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVideo(args[0])
		},
	}
}

func runVideo(input string) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	opts, err := buildOptions(app)
	if err != nil {
		return err
	}
	opts.OutputPath = "" // derived by the video pipeline

	steps := []string{"Checking dependencies", "Processing video"}
	progress := tui.NewProgressDisplay(steps, quietFlag)

	progress.StartStep(0)
	// Probe yt-dlp before ensureReady, which may download a large model
	remote := strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
	if remote && !app.Downloader.IsAvailable() {
		progress.FailStep(0, "yt-dlp not found")
		return domain.ErrYtDlpNotFound
	}
	if err := ensureReady(app, opts.Model, progress, 0); err != nil {
		return err
	}
	progress.CompleteStep(0)

	progress.StartStep(1)
	done := progress.StartSpinner()
	result, err := app.VideoSvc.Run(context.Background(), input, opts)
	close(done)
	if err != nil {
		progress.FailStep(1, err.Error())
		return err
	}
	progress.CompleteStep(1)

	printResult(result, opts)
	return nil
}
