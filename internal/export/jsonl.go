package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/video-transcriber/internal"
)

// JSONLExporter exports transcripts in JSONL format (one segment per line).
// A transcript without segments becomes a single line holding the full text.
type JSONLExporter struct{}

// Export exports a transcript to JSONL format
func (e *JSONLExporter) Export(t *internal.Transcript, w io.Writer) error {
	enc := json.NewEncoder(w)

	if len(t.Segments) == 0 {
		return enc.Encode(map[string]interface{}{"text": t.Text})
	}

	for _, seg := range t.Segments {
		obj := map[string]interface{}{
			"id":    seg.ID,
			"start": seg.Start,
			"end":   seg.End,
			"text":  seg.Text,
		}
		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("failed to encode segment: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
