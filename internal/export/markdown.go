package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/video-transcriber/internal"
)

// MarkdownExporter exports transcripts in Markdown format
type MarkdownExporter struct{}

// Export exports a transcript to Markdown format
func (e *MarkdownExporter) Export(t *internal.Transcript, w io.Writer) error {
	title := "Transcript"
	if t.Source != "" {
		title = fmt.Sprintf("Transcript: %s", t.Source)
	}
	_, _ = fmt.Fprintf(w, "# %s\n\n", title)

	if t.Language != "" {
		_, _ = fmt.Fprintf(w, "**Language:** %s  \n", t.Language)
	}
	if len(t.Segments) > 0 {
		_, _ = fmt.Fprintf(w, "**Segments:** %d\n\n", len(t.Segments))
	}

	_, _ = fmt.Fprintf(w, "---\n\n")
	_, err := fmt.Fprintf(w, "%s\n", escapeMarkdown(strings.TrimSpace(t.Text)))
	if err != nil {
		return err
	}

	if len(t.Segments) > 0 {
		_, _ = fmt.Fprintf(w, "\n## Segments\n\n")
		for _, seg := range t.Segments {
			_, _ = fmt.Fprintf(w, "- **[%s → %s]** %s\n", clock(seg.Start), clock(seg.End), escapeMarkdown(strings.TrimSpace(seg.Text)))
		}
	}

	return nil
}

// escapeMarkdown escapes emphasis markers so spoken text renders literally
func escapeMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "\\*\\*")
	text = strings.ReplaceAll(text, "__", "\\_\\_")
	return text
}

// clock formats seconds as mm:ss, or h:mm:ss past the hour
func clock(seconds float64) string {
	total := int(seconds)
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
