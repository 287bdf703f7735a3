package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devbush/podbleep/internal/adapters/cli/tui"
)

// NewModelCmd creates the model subcommand
func NewModelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Manage Whisper models",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List available models",
			RunE:  runModelList,
		},
		&cobra.Command{
			Use:   "download <model>",
			Short: "Download a model",
			Args:  cobra.ExactArgs(1),
			RunE:  runModelDownload,
		},
		&cobra.Command{
			Use:   "remove <model>",
			Short: "Remove a downloaded model",
			Args:  cobra.ExactArgs(1),
			RunE:  runModelRemove,
		},
	)
	return cmd
}

func runModelList(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	fmt.Println()
	for _, m := range app.Transcriber.AvailableModels() {
		bullet := "○"
		if m.Downloaded {
			bullet = "●"
		}
		line := fmt.Sprintf("  %s %-8s %8s  %s", bullet, m.Name, tui.FormatSize(m.Size), m.Description)
		if m.Name == app.Config.Defaults.Model {
			line += "  (default)"
		}
		fmt.Println(line)
	}
	fmt.Println()
	fmt.Println("  ● downloaded   ○ not downloaded")
	fmt.Println()

	return nil
}

func runModelDownload(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}
	model := args[0]

	if app.Transcriber.IsModelDownloaded(model) {
		fmt.Println(tui.Success(fmt.Sprintf("Model '%s' is already downloaded.", model)))
		return nil
	}

	progress := tui.NewProgressDisplay([]string{fmt.Sprintf("Downloading model '%s'", model)}, quietFlag)
	progress.StartStep(0)
	err = app.Transcriber.DownloadModel(context.Background(), model, func(downloaded, total int64) {
		progress.UpdateProgress(0, downloaded, total)
	})
	if err != nil {
		progress.FailStep(0, err.Error())
		return err
	}
	progress.CompleteStep(0)

	fmt.Println(tui.Success(fmt.Sprintf("Model '%s' ready.", model)))
	return nil
}

func runModelRemove(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}
	model := args[0]

	if !app.Transcriber.IsModelDownloaded(model) {
		fmt.Println(tui.Warn(fmt.Sprintf("Model '%s' is not downloaded.", model)))
		return nil
	}
	if err := app.Transcriber.DeleteModel(model); err != nil {
		return err
	}

	fmt.Println(tui.Success(fmt.Sprintf("Model '%s' removed.", model)))
	return nil
}
