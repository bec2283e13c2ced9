package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iksnae/video-transcriber/internal"
	"github.com/iksnae/video-transcriber/internal/config"
	"github.com/iksnae/video-transcriber/internal/transcribe"
	"github.com/iksnae/video-transcriber/internal/tui"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	serverURL  string
	timeout    time.Duration
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"

	// cfg is loaded by PersistentPreRunE before any command runs
	cfg        *config.Config
	syncLogger func() error
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "video-transcriber",
	Short: "Upload a video and get its transcript",
	Long: `Upload a video file to a transcription service and work with the transcript.

Without a subcommand an interactive screen opens: drop a video file onto the
terminal (or pick one from the file browser) and the upload starts right away.
When the transcript arrives it can be edited, copied to the clipboard or saved
as transcript.txt.

Accepted files: .mp4, .mov, .avi, .mkv, .wmv

Quick Start:
  video-transcriber                          # Interactive mode
  video-transcriber transcribe talk.mp4      # Print the transcript
  video-transcriber transcribe talk.mp4 --format srt --out talk.srt
  video-transcriber healthcheck              # Check server and environment`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		internal.SetVerbose(verbose)

		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cmd.Flags().Changed("server") {
			loaded.ServerURL = serverURL
		}
		if cmd.Flags().Changed("timeout") {
			loaded.Timeout = timeout
		}
		cfg = loaded

		// The interactive screen owns the terminal, so it only logs to the file
		sync, err := internal.InitLogger(internal.LoggerOptions{
			FilePath: cfg.LogFile,
			Console:  cmd.HasParent(),
		})
		syncLogger = sync
		if err != nil {
			internal.LogWarn("Failed to open log file %s: %v", cfg.LogFile, err)
		}
		if cfg.Source != "" {
			internal.LogDebug("Using config %s", cfg.Source)
		}

		if cmd.Annotations[skipValidation] == "true" {
			return nil
		}
		return cfg.Validate()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := newController()
		startDir, err := os.Getwd()
		if err != nil {
			startDir = "."
		}

		p := tea.NewProgram(
			tui.NewModel(cmd.Context(), ctrl, startDir),
			tea.WithAltScreen(),
			tea.WithContext(cmd.Context()),
		)
		_, err = p.Run()
		ctrl.Reset()
		return err
	},
}

// skipValidation marks commands that must run with an invalid configuration
const skipValidation = "skip-config-validation"

// newController wires the controller to the configured service and download directory
func newController() *internal.Controller {
	client := transcribe.New(cfg.ServerURL, transcribe.WithTimeout(cfg.Timeout))
	return internal.NewController(client, internal.WithSaver(internal.NewFileSaver(cfg.DownloadDir)))
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if syncLogger != nil {
		_ = syncLogger()
	}
	if err != nil {
		internal.PrintError(fmt.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: .video-transcriber/config.yaml, then ~/.video-transcriber/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", config.DefaultServerURL, "Transcription service URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", config.DefaultTimeout, "Maximum time for one upload and transcription")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
