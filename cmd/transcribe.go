package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/iksnae/video-transcriber/internal"
	"github.com/iksnae/video-transcriber/internal/export"
	"github.com/spf13/cobra"
)

var (
	format       string
	outputPath   string
	copyResult   bool
	downloadText bool
)

// transcribeCmd represents the transcribe command
var transcribeCmd = &cobra.Command{
	Use:   "transcribe <file>...",
	Short: "Transcribe a video file without the interactive screen",
	Long: `Upload a video file to the transcription service, show the upload progress
and write the transcript (txt, json, yaml, md, jsonl, srt).

Only the first file is used when several are given. The transcript goes to
stdout unless --out is set; --download also saves transcript.txt into the
configured download directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}
		if len(args) > 1 {
			internal.LogWarn("Only the first file is transcribed, ignoring %d more", len(args)-1)
		}

		file, err := internal.NewVideoFile(args[0])
		if err != nil {
			return err
		}

		ctrl := newController()
		if err := ctrl.SelectFile(file); err != nil {
			return err
		}
		events, err := ctrl.Submit(cmd.Context())
		if err != nil {
			return err
		}

		printer := internal.NewProgressPrinter(cmd.ErrOrStderr(), fmt.Sprintf("Transcribing %s (%s)", file.Name, file.HumanSize()))
		final := ctrl.Await(events, func(s internal.Session) {
			if s.Status == internal.StatusUploading {
				printer.Update(s.Progress)
			}
		})
		printer.Done()

		if final.Status != internal.StatusCompleted {
			return errors.New(final.ErrorMessage)
		}

		if err := writeTranscript(cmd.OutOrStdout(), exporter, ctrl.Transcript()); err != nil {
			return err
		}

		if downloadText {
			if path, ok := ctrl.DownloadAsFile(); ok {
				internal.PrintSuccess(fmt.Sprintf("Saved %s", path))
			} else {
				internal.PrintWarning("Could not save transcript.txt")
			}
		}
		if copyResult {
			if ctrl.CopyToClipboard() {
				internal.PrintSuccess("Copied transcript to clipboard")
			} else {
				internal.PrintWarning("Could not copy transcript to clipboard")
			}
		}
		return nil
	},
}

// writeTranscript exports t to --out, or to stdout when no path was given
func writeTranscript(stdout io.Writer, exporter export.Exporter, t *internal.Transcript) error {
	if outputPath == "" || outputPath == "-" {
		if err := exporter.Export(t, stdout); err != nil {
			return &internal.ExportError{Format: format, Err: err}
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return &internal.ExportError{Format: format, Path: outputPath, Err: err}
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return &internal.ExportError{Format: format, Path: outputPath, Err: err}
	}
	defer func() { _ = f.Close() }()

	if err := exporter.Export(t, f); err != nil {
		return &internal.ExportError{Format: format, Path: outputPath, Err: err}
	}
	internal.LogInfo("Wrote %s transcript to %s", format, outputPath)
	return nil
}

func init() {
	rootCmd.AddCommand(transcribeCmd)
	transcribeCmd.Flags().StringVarP(&format, "format", "f", "txt", "Output format: txt, json, yaml, md, jsonl, srt")
	transcribeCmd.Flags().StringVarP(&outputPath, "out", "o", "", "Output file (default: stdout)")
	transcribeCmd.Flags().BoolVar(&copyResult, "copy", false, "Copy the transcript to the clipboard")
	transcribeCmd.Flags().BoolVar(&downloadText, "download", false, "Also save transcript.txt to the download directory")
}
