package internal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/iksnae/video-transcriber/testutil"
)

func TestIsAcceptedVideo(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"clip.mp4", true},
		{"clip.MOV", true},
		{"talk.avi", true},
		{"movie.mkv", true},
		{"old.wmv", true},
		{"notes.txt", false},
		{"audio.mp3", false},
		{"mp4", false},
		{"archive.mp4.zip", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAcceptedVideo(tt.name); got != tt.want {
				t.Errorf("IsAcceptedVideo(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestNewVideoFile(t *testing.T) {
	dir := t.TempDir()
	mp4 := testutil.CreateVideoFixture(t, dir, "clip.mp4", 2048)
	wmv := testutil.WriteFile(t, dir, "old.wmv", []byte("not really a video"))
	txt := testutil.WriteFile(t, dir, "notes.txt", []byte("hello"))

	tests := []struct {
		name     string
		path     string
		wantErr  error
		wantMIME string
	}{
		{name: "sniffed mp4", path: mp4, wantMIME: "video/mp4"},
		{name: "extension fallback", path: wmv, wantMIME: "video/x-ms-wmv"},
		{name: "unsupported extension", path: txt, wantErr: ErrUnsupportedType},
		{name: "directory", path: dir, wantErr: ErrNotAFile},
		{name: "missing file", path: filepath.Join(dir, "gone.mp4"), wantErr: os.ErrNotExist},
		{name: "empty path", path: "  ", wantErr: ErrNoFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := NewVideoFile(tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewVideoFile() error = %v, want %v", err, tt.wantErr)
				}
				var selErr *SelectionError
				if !errors.As(err, &selErr) {
					t.Errorf("error should be a *SelectionError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewVideoFile() error = %v", err)
			}
			if file.Name != filepath.Base(tt.path) {
				t.Errorf("Name = %q, want %q", file.Name, filepath.Base(tt.path))
			}
			if file.MIMEType != tt.wantMIME {
				t.Errorf("MIMEType = %q, want %q", file.MIMEType, tt.wantMIME)
			}
		})
	}
}

func TestVideoFile_HumanSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{-1, "0 B"},
		{1024, "1.0 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
	}
	for _, tt := range tests {
		v := &VideoFile{Size: tt.size}
		if got := v.HumanSize(); got != tt.want {
			t.Errorf("HumanSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestFileSaver_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "downloads")
	saver := NewFileSaver(dir)

	path, err := saver.Save(DownloadFileName, []byte("first"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := saver.Save(DownloadFileName, []byte("second")); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}
	if got := testutil.ReadFile(t, path); got != "second" {
		t.Errorf("content = %q, want the later save to replace the file", got)
	}
}
