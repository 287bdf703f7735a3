package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDepsCmd creates the deps subcommand
func NewDepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Show external tool status (ffmpeg, yt-dlp, whisper)",
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show dependency status",
		RunE:  runDepsStatus,
	}

	cmd.AddCommand(statusCmd)
	return cmd
}

func runDepsStatus(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Dependency Status:")
	fmt.Println()

	// ffmpeg
	if app.Muxer.IsAvailable() {
		fmt.Printf("  ffmpeg:   installed (%s)\n", app.Muxer.BinaryPath())
	} else {
		fmt.Println("  ffmpeg:   not found (required)")
	}

	// yt-dlp, only needed for video URLs
	if app.Downloader.IsAvailable() {
		fmt.Printf("  yt-dlp:   installed (%s)\n", app.Downloader.BinaryPath())
	} else {
		fmt.Println("  yt-dlp:   not found (only needed for video URLs)")
	}

	// Whisper models
	models := app.Transcriber.AvailableModels()
	downloaded := 0
	for _, m := range models {
		if m.Downloaded {
			downloaded++
		}
	}
	fmt.Printf("  whisper:  %d/%d models downloaded\n", downloaded, len(models))
	fmt.Println()

	return nil
}
