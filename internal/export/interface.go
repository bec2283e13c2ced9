package export

import (
	"fmt"
	"io"

	"github.com/iksnae/video-transcriber/internal"
)

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(t *internal.Transcript, w io.Writer) error
	Extension() string
}

// Formats lists the accepted format names
var Formats = []string{"txt", "json", "yaml", "md", "jsonl", "srt"}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "txt", "text":
		return &TextExporter{}, nil
	case "jsonl":
		return &JSONLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "yaml", "yml":
		return &YAMLExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	case "srt":
		return &SRTExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: txt, json, yaml, md, jsonl, srt)", format)
	}
}
