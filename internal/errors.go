package internal

import (
	"errors"
	"fmt"
)

// TranscriptionFailedMessage is the only failure text ever shown to the user
const TranscriptionFailedMessage = "Error transcribing video. Please try again."

var (
	ErrNoFile            = errors.New("no file selected")
	ErrNotAFile          = errors.New("not a regular file")
	ErrUnsupportedType   = errors.New("unsupported file type")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrUploadAbandoned   = errors.New("upload ended without a result")
)

// SelectionError represents a rejected file selection or drop
type SelectionError struct {
	Path string
	Err  error
}

func (e *SelectionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("selection error: %v", e.Err)
	}
	return fmt.Sprintf("selection error: %s: %v", e.Path, e.Err)
}

func (e *SelectionError) Unwrap() error {
	return e.Err
}

// TranscriptionError represents any HTTP or transport failure during submission
type TranscriptionError struct {
	File     string
	UploadID string
	Err      error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription error [%s] %s: %v", e.UploadID, e.File, e.Err)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}

// ClipboardError represents a failed clipboard write
type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("clipboard error: %v", e.Err)
}

func (e *ClipboardError) Unwrap() error {
	return e.Err
}

// DownloadError represents a failed transcript save
type DownloadError struct {
	Path string
	Err  error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download error %s: %v", e.Path, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// TransitionError is returned when an operation is not allowed in the current status
type TransitionError struct {
	Op   string
	From Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s while %s", e.Op, e.From)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
