package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/video-transcriber/internal"
	"github.com/iksnae/video-transcriber/internal/transcribe"
	"github.com/spf13/cobra"
)

const pingTimeout = 10 * time.Second

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check that video-transcriber can reach the transcription service",
	Long: `Check the health of video-transcriber by verifying:
  • Configuration is valid
  • The transcription service answers
  • A system clipboard is available
  • The download directory is writable

Use --verbose to print the resolved configuration.`,
	Annotations: map[string]string{skipValidation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, sectionStyle.Render("🔍 Video Transcriber Health Check"))
		fmt.Fprintln(out)

		// Step 1: Configuration
		fmt.Fprintln(out, infoStyle.Render("Step 1: Checking configuration..."))
		configErr := cfg.Validate()
		if configErr != nil {
			fmt.Fprintln(out, errorStyle.Render("❌ Invalid configuration:"), configErr)
		} else {
			fmt.Fprintln(out, successStyle.Render("✅ Configuration is valid"))
		}
		if verbose {
			source := cfg.Source
			if source == "" {
				source = "defaults"
			}
			fmt.Fprintf(out, "   Source: %s\n", source)
			fmt.Fprintf(out, "   Server: %s\n", cfg.ServerURL)
			fmt.Fprintf(out, "   Timeout: %s\n", cfg.Timeout)
			fmt.Fprintf(out, "   Download dir: %s\n", cfg.DownloadDir)
			fmt.Fprintf(out, "   Log file: %s\n", cfg.LogFile)
		}
		fmt.Fprintln(out)

		// Step 2: Transcription service
		fmt.Fprintln(out, infoStyle.Render("Step 2: Contacting transcription service..."))
		var serverErr error
		if configErr != nil {
			serverErr = configErr
			fmt.Fprintln(out, warningStyle.Render("⚠️  Skipped, configuration is invalid"))
		} else {
			client := transcribe.New(cfg.ServerURL, transcribe.WithTimeout(pingTimeout))
			var status int
			serverErr = internal.ShowProgress(cmd.Context(), fmt.Sprintf("Connecting to %s", cfg.ServerURL), func() error {
				ctx, cancel := context.WithTimeout(cmd.Context(), pingTimeout)
				defer cancel()
				var err error
				status, err = client.Ping(ctx)
				return err
			})
			if serverErr != nil {
				fmt.Fprintln(out, errorStyle.Render("❌ Transcription service unreachable:"), serverErr)
			} else {
				fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✅ Transcription service answered (HTTP %d)", status)))
				if verbose {
					fmt.Fprintf(out, "   Endpoint: %s\n", client.Endpoint())
				}
			}
		}
		fmt.Fprintln(out)

		// Step 3: Clipboard
		fmt.Fprintln(out, infoStyle.Render("Step 3: Checking clipboard..."))
		if internal.ClipboardAvailable() {
			fmt.Fprintln(out, successStyle.Render("✅ Clipboard available"))
		} else {
			fmt.Fprintln(out, warningStyle.Render("⚠️  No clipboard utility found, copy will not work"))
			if verbose {
				fmt.Fprintln(out, "   On Linux install xclip, xsel or wl-clipboard")
			}
		}
		fmt.Fprintln(out)

		// Step 4: Download directory
		fmt.Fprintln(out, infoStyle.Render("Step 4: Checking download directory..."))
		if err := checkWritable(cfg.DownloadDir); err != nil {
			fmt.Fprintln(out, warningStyle.Render("⚠️  Download directory is not writable:"), err)
		} else {
			fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✅ %s is writable", cfg.DownloadDir)))
		}
		fmt.Fprintln(out)

		// Summary
		fmt.Fprintln(out, sectionStyle.Render("📊 Summary"))
		fmt.Fprintln(out)
		if configErr == nil && serverErr == nil {
			fmt.Fprintln(out, successStyle.Render("✅ Health check passed!"))
			return nil
		}
		fmt.Fprintln(out, errorStyle.Render("❌ Health check failed"))
		if configErr != nil {
			return fmt.Errorf("health check failed: %w", configErr)
		}
		return fmt.Errorf("health check failed: transcription service unreachable: %w", serverErr)
	},
}

// checkWritable creates and removes a temporary file in dir
func checkWritable(dir string) error {
	if dir == "" {
		return fmt.Errorf("no directory configured")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".video-transcriber-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
}
