package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/iksnae/video-transcriber/internal"
)

// SRTExporter exports segments as SubRip subtitles. Without segments the whole
// text becomes a single cue starting at zero.
type SRTExporter struct{}

// Export exports a transcript to SRT format
func (e *SRTExporter) Export(t *internal.Transcript, w io.Writer) error {
	segments := t.Segments
	if len(segments) == 0 {
		if strings.TrimSpace(t.Text) == "" {
			return nil
		}
		segments = []internal.Segment{{Start: 0, End: 0, Text: t.Text}}
	}

	for i, seg := range segments {
		end := seg.End
		if end < seg.Start {
			end = seg.Start
		}
		if _, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n\n", i+1, srtTimestamp(seg.Start), srtTimestamp(end), strings.TrimSpace(seg.Text)); err != nil {
			return err
		}
	}
	return nil
}

// srtTimestamp formats seconds as HH:MM:SS,mmm
func srtTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	ms := int64(math.Round(seconds * 1000))
	h := ms / 3_600_000
	ms %= 3_600_000
	m := ms / 60_000
	ms %= 60_000
	s := ms / 1000
	ms %= 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// Extension returns the file extension for this format
func (e *SRTExporter) Extension() string {
	return "srt"
}
