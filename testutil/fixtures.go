package testutil

import (
	"testing"
)

// mp4Header is the start of an ISO base media file, enough for content sniffing
var mp4Header = []byte{
	0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p',
	'i', 's', 'o', 'm', 0x00, 0x00, 0x02, 0x00,
	'i', 's', 'o', 'm', 'i', 's', 'o', '2',
}

// VideoBytes returns size bytes that begin with an MP4 header. Sizes smaller
// than the header are filled with a repeating pattern instead.
func VideoBytes(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i % 251)
	}
	if size >= len(mp4Header) {
		copy(data, mp4Header)
	}
	return data
}

// CreateVideoFixture writes a fake video of size bytes named name into dir
func CreateVideoFixture(t *testing.T, dir, name string, size int) string {
	t.Helper()
	return WriteFile(t, dir, name, VideoBytes(size))
}

// SampleSegments is a small two-segment transcription as the service returns it
var SampleSegments = []map[string]interface{}{
	{"id": 0, "start": 0.0, "end": 1.5, "text": "hello"},
	{"id": 1, "start": 1.5, "end": 3.25, "text": "world"},
}

// SampleResponse is a successful service response body
func SampleResponse(t *testing.T, text string) []byte {
	t.Helper()
	return JSONMarshal(t, map[string]interface{}{
		"text":     text,
		"language": "en",
		"segments": SampleSegments,
	})
}
