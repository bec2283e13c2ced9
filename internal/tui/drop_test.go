package tui

import (
	"reflect"
	"testing"
)

func TestParseDroppedPaths(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "   ", want: nil},
		{name: "plain path", in: "/videos/clip.mp4", want: []string{"/videos/clip.mp4"}},
		{name: "escaped spaces", in: `/videos/my\ clip.mp4`, want: []string{"/videos/my clip.mp4"}},
		{name: "quoted", in: `'/videos/my clip.mov'`, want: []string{"/videos/my clip.mov"}},
		{name: "several files", in: "/a.mp4 /b.mkv\n", want: []string{"/a.mp4", "/b.mkv"}},
		{name: "file uri", in: "file:///videos/my%20clip.mp4", want: []string{"/videos/my clip.mp4"}},
		{name: "unbalanced quote", in: `"/videos/clip.mp4`, want: []string{"/videos/clip.mp4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseDroppedPaths(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseDroppedPaths(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
