package export

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/iksnae/video-transcriber/internal"
)

func TestJSONLExporter_Export(t *testing.T) {
	tests := []struct {
		name       string
		transcript *internal.Transcript
		wantTexts  []string
	}{
		{
			name:       "one line per segment",
			transcript: sampleTranscript(),
			wantTexts:  []string{" hello", " world"},
		},
		{
			name:       "no segments falls back to text",
			transcript: plainTranscript("hello world"),
			wantTexts:  []string{"hello world"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := (&JSONLExporter{}).Export(tt.transcript, &buf); err != nil {
				t.Fatalf("Export() error = %v", err)
			}

			var texts []string
			scanner := bufio.NewScanner(&buf)
			for scanner.Scan() {
				var obj map[string]interface{}
				if err := json.Unmarshal(scanner.Bytes(), &obj); err != nil {
					t.Fatalf("line %q is not valid JSON: %v", scanner.Text(), err)
				}
				text, _ := obj["text"].(string)
				texts = append(texts, text)
			}

			if len(texts) != len(tt.wantTexts) {
				t.Fatalf("got %d lines, want %d", len(texts), len(tt.wantTexts))
			}
			for i := range texts {
				if texts[i] != tt.wantTexts[i] {
					t.Errorf("line %d text = %q, want %q", i, texts[i], tt.wantTexts[i])
				}
			}
		})
	}
}
