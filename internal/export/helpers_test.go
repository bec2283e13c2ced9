package export

import "github.com/iksnae/video-transcriber/internal"

func sampleTranscript() *internal.Transcript {
	return &internal.Transcript{
		Source:   "clip.mp4",
		Language: "en",
		Text:     "hello world",
		Segments: []internal.Segment{
			{ID: 0, Start: 0, End: 1.5, Text: " hello"},
			{ID: 1, Start: 1.5, End: 3.25, Text: " world"},
		},
	}
}

func plainTranscript(text string) *internal.Transcript {
	return &internal.Transcript{Text: text}
}
