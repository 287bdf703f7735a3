package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/devbush/podbleep/internal/adapters/cli/tui"
	"github.com/devbush/podbleep/internal/application"
	"github.com/devbush/podbleep/internal/audio"
	"github.com/devbush/podbleep/internal/domain"
)

var (
	// Global flags
	modeFlag     string
	modelFlag    string
	languageFlag string
	padFlag      int
	wordlistFlag string
	outputFlag   string
	noCacheFlag  bool
	quietFlag    bool
	verboseFlag  bool

	// padFlagSet records whether --pad was passed at all, so an
	// explicit --pad 0 is honored instead of falling back to the
	// configured default.
	padFlagSet bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "podbleep [audio-file]",
		Short: "Bleep banned words out of spoken-word audio",
		Long: `podbleep transcribes an audio file, finds words from your wordlist,
and replaces them with a bleep tone or silence while keeping the
file's timing untouched.

Provide an audio file to clean it, or run without arguments for an
interactive menu.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
			if verboseFlag {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			padFlagSet = cmd.Flags().Changed("pad")
		},
		RunE: runRoot,
	}

	// Global flags, shared with subcommands
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&modeFlag, "mode", "", "replacement mode: bleep or silence")
	pf.StringVar(&modelFlag, "model", "", "whisper model: tiny, base, small, medium, large")
	pf.StringVar(&languageFlag, "language", "", "transcription language (default auto-detect)")
	pf.IntVar(&padFlag, "pad", 0, "padding in ms around each matched word, 0 disables")
	pf.StringVar(&wordlistFlag, "wordlist", "", "path to the wordlist file")
	pf.BoolVar(&noCacheFlag, "no-cache", false, "skip the transcript cache")
	pf.BoolVarP(&quietFlag, "quiet", "q", false, "suppress progress output")
	pf.BoolVarP(&verboseFlag, "verbose", "v", false, "verbose diagnostic logging")

	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "output file path (default: name_clean.ext)")

	// Add subcommands
	rootCmd.AddCommand(NewVideoCmd())
	rootCmd.AddCommand(NewInspectCmd())
	rootCmd.AddCommand(NewModelCmd())
	rootCmd.AddCommand(NewCacheCmd())
	rootCmd.AddCommand(NewDepsCmd())

	return rootCmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		// No arguments - show interactive menu
		return runInteractiveMenu()
	}

	return runBleep(args[0])
}

func runInteractiveMenu() error {
	options := []tui.MenuOption{
		{Label: "Bleep an audio file", Desc: "transcribe and replace banned words", Value: "audio"},
		{Label: "Bleep a video file or URL", Desc: "clean the audio track, keep the video", Value: "video"},
		{Label: "Inspect a transcript", Desc: "see what was heard around a timestamp", Value: "inspect"},
		{Label: "Manage whisper models", Value: "models"},
		{Label: "Manage transcript cache", Value: "cache"},
	}

	selected, err := tui.RunMenu(options)
	if err != nil {
		return err
	}

	switch selected {
	case "audio":
		fmt.Print("Enter audio file path: ")
		var input string
		fmt.Scanln(&input)
		return runBleep(input)
	case "video":
		fmt.Print("Enter video file path or URL: ")
		var input string
		fmt.Scanln(&input)
		return runVideo(input)
	case "inspect":
		fmt.Print("Enter audio file path: ")
		var input string
		fmt.Scanln(&input)
		fmt.Print("Enter timestamp (seconds or mm:ss): ")
		var ts string
		fmt.Scanln(&ts)
		return runInspect(input, ts, 30)
	case "models":
		return runModelList(nil, nil)
	case "cache":
		return runCacheStats(nil, nil)
	case "":
		fmt.Println("Cancelled")
	}

	return nil
}

// buildOptions merges flags with configured defaults.
func buildOptions(app *App) (application.BleepOptions, error) {
	modeStr := modeFlag
	if modeStr == "" {
		modeStr = app.Config.Defaults.Mode
	}
	mode, err := audio.ParseMode(modeStr)
	if err != nil {
		return application.BleepOptions{}, err
	}

	model := modelFlag
	if model == "" {
		model = app.Config.Defaults.Model
	}

	pad := resolvePad(padFlagSet, padFlag, app.Config.Defaults.PaddingMs)

	wordlist := wordlistFlag
	if wordlist == "" {
		wordlist = app.Config.WordlistPath()
	}

	return application.BleepOptions{
		Mode:         mode,
		Model:        model,
		Language:     languageFlag,
		PadMs:        pad,
		WordlistPath: wordlist,
		OutputPath:   outputFlag,
		NoCache:      noCacheFlag,
	}, nil
}

// resolvePad picks the interval padding: a flag passed on the command
// line wins even at zero, otherwise the configured default applies.
// Negative values clamp to zero.
func resolvePad(flagSet bool, flagVal, cfgVal int) int {
	pad := cfgVal
	if flagSet {
		pad = flagVal
	}
	if pad < 0 {
		return 0
	}
	return pad
}

// ensureReady checks external dependencies and downloads the whisper
// model if it is missing, reporting byte progress on the given step.
func ensureReady(app *App, model string, progress *tui.ProgressDisplay, step int) error {
	if !app.Muxer.IsAvailable() {
		progress.FailStep(step, "ffmpeg not found")
		return domain.ErrFFmpegNotFound
	}

	if !app.Transcriber.IsModelDownloaded(model) {
		if err := app.Transcriber.DownloadModel(context.Background(), model, func(d, t int64) {
			progress.UpdateProgress(step, d, t)
		}); err != nil {
			progress.FailStep(step, err.Error())
			return fmt.Errorf("failed to download model '%s': %w", model, err)
		}
	}

	return nil
}

func runBleep(input string) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	opts, err := buildOptions(app)
	if err != nil {
		return err
	}

	steps := []string{"Checking dependencies", "Transcribing and editing"}
	progress := tui.NewProgressDisplay(steps, quietFlag)

	progress.StartStep(0)
	if err := ensureReady(app, opts.Model, progress, 0); err != nil {
		return err
	}
	progress.CompleteStep(0)

	progress.StartStep(1)
	done := progress.StartSpinner()
	result, err := app.BleepSvc.Run(context.Background(), input, opts)
	close(done)
	if err != nil {
		progress.FailStep(1, err.Error())
		return err
	}
	progress.CompleteStep(1)

	printResult(result, opts)
	return nil
}

func printResult(result *application.BleepResult, opts application.BleepOptions) {
	fmt.Println()
	switch result.Status {
	case application.StatusEmptyWordlist:
		fmt.Println(tui.Warn(fmt.Sprintf("Your wordlist is empty! Add words to %s and try again.", opts.WordlistPath)))
	case application.StatusNoMatches:
		fmt.Println(tui.Success("No banned words found! No changes made."))
	case application.StatusEdited:
		fmt.Printf("Loaded %d word(s) from wordlist.\n", result.WordsLoaded)
		for _, h := range result.Hits {
			fmt.Println(tui.FormatHit(h))
		}
		fmt.Println()
		fmt.Println(tui.Success(fmt.Sprintf("Replaced %d instance(s) using mode '%s'.", result.Replacements, opts.Mode)))
		fmt.Println(tui.Success("Clean file saved as: " + result.OutputPath))
	}
}
