package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/devbush/podbleep/internal/adapters/cli/tui"
	"github.com/devbush/podbleep/internal/application"
	"github.com/devbush/podbleep/internal/domain"
)

var inspectWindowFlag int

// NewInspectCmd creates the inspect subcommand
func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <audio-file> <timestamp>",
		Short: "Show what the transcriber heard around a timestamp",
		Long: `Transcribes the file and prints every word near the given
timestamp, so you can see how a missed word was actually
transcribed and add that spelling to your wordlist.

Timestamps can be plain seconds (2146), mm:ss (35:46), or
hh:mm:ss (1:02:03).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0], args[1], inspectWindowFlag)
		},
	}
	cmd.Flags().IntVarP(&inspectWindowFlag, "window", "w", 30, "seconds of context on each side")
	return cmd
}

func runInspect(input, ts string, windowSec int) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	center, err := application.ParseTimestamp(ts)
	if err != nil {
		return err
	}

	if _, err := os.Stat(input); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrFileNotFound, input)
	}

	opts, err := buildOptions(app)
	if err != nil {
		return err
	}

	steps := []string{"Checking dependencies", "Transcribing"}
	progress := tui.NewProgressDisplay(steps, quietFlag)

	progress.StartStep(0)
	if err := ensureReady(app, opts.Model, progress, 0); err != nil {
		return err
	}
	progress.CompleteStep(0)

	progress.StartStep(1)
	done := progress.StartSpinner()
	rows, err := app.InspectSvc.Window(context.Background(), input, center, float64(windowSec), opts)
	close(done)
	if err != nil {
		progress.FailStep(1, err.Error())
		return err
	}
	progress.CompleteStep(1)

	fmt.Println()
	if len(rows) == 0 {
		fmt.Println(tui.Warn(fmt.Sprintf("No words transcribed within %ds of %s.", windowSec, domain.FormatTimestamp(center))))
		return nil
	}

	fmt.Printf("Words around %s:\n\n", domain.FormatTimestamp(center))
	for _, row := range rows {
		fmt.Println(tui.FormatInspectRow(row.Word, row.Nearest))
	}
	return nil
}
