package export

import (
	"io"

	"github.com/iksnae/video-transcriber/internal"
)

// TextExporter writes the transcript text exactly as it is, UTF-8, nothing added
type TextExporter struct{}

// Export writes the transcript text
func (e *TextExporter) Export(t *internal.Transcript, w io.Writer) error {
	_, err := io.WriteString(w, t.Text)
	return err
}

// Extension returns the file extension for this format
func (e *TextExporter) Extension() string {
	return "txt"
}
