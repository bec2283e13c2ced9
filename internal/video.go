package internal

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
)

// AcceptedExtensions lists the video file extensions that can be selected
var AcceptedExtensions = []string{".mp4", ".mov", ".avi", ".mkv", ".wmv"}

var extensionMIMETypes = map[string]string{
	".mp4": "video/mp4",
	".mov": "video/quicktime",
	".avi": "video/x-msvideo",
	".mkv": "video/x-matroska",
	".wmv": "video/x-ms-wmv",
}

// VideoFile is a selected video on local disk
type VideoFile struct {
	Path     string `json:"path" yaml:"path"`
	Name     string `json:"name" yaml:"name"`
	Size     int64  `json:"size" yaml:"size"`
	MIMEType string `json:"mime_type" yaml:"mime_type"`
}

// IsAcceptedVideo reports whether the file name carries an accepted video extension
func IsAcceptedVideo(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, accepted := range AcceptedExtensions {
		if ext == accepted {
			return true
		}
	}
	return false
}

// NewVideoFile stats the file at path and checks it against the accepted extensions.
// The returned error is always a *SelectionError.
func NewVideoFile(path string) (*VideoFile, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &SelectionError{Err: ErrNoFile}
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, &SelectionError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &SelectionError{Path: path, Err: ErrNotAFile}
	}
	if !IsAcceptedVideo(path) {
		return nil, &SelectionError{Path: path, Err: ErrUnsupportedType}
	}

	return &VideoFile{
		Path:     path,
		Name:     filepath.Base(path),
		Size:     info.Size(),
		MIMEType: detectMIMEType(path),
	}, nil
}

// detectMIMEType sniffs the file content and falls back to the type implied by the
// extension when the content is not recognised as video.
func detectMIMEType(path string) string {
	if mt, err := mimetype.DetectFile(path); err == nil && strings.HasPrefix(mt.String(), "video/") {
		return mt.String()
	}
	return extensionMIMETypes[strings.ToLower(filepath.Ext(path))]
}

// Open opens the video for reading
func (v *VideoFile) Open() (io.ReadCloser, error) {
	return os.Open(v.Path)
}

// HumanSize returns the file size in binary units, e.g. "5.0 MiB"
func (v *VideoFile) HumanSize() string {
	if v.Size < 0 {
		return "0 B"
	}
	return humanize.IBytes(uint64(v.Size))
}
