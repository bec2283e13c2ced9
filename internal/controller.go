package internal

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/iksnae/video-transcriber/internal/transcribe"
)

// DownloadFileName is the name of the file written by DownloadAsFile
const DownloadFileName = "transcript.txt"

// Transcriber uploads a video and returns its transcription
type Transcriber interface {
	Transcribe(ctx context.Context, up transcribe.Upload, onProgress func(int)) (*transcribe.Result, error)
}

// Event is an asynchronous result of an upload, applied through Controller.Apply
type Event interface {
	uploadID() string
}

// ProgressEvent reports the percentage of the request body sent
type ProgressEvent struct {
	UploadID string
	Percent  int
}

// CompletedEvent carries a successful transcription
type CompletedEvent struct {
	UploadID string
	Result   *transcribe.Result
}

// FailedEvent carries the cause of a failed upload
type FailedEvent struct {
	UploadID string
	Err      error
}

func (e ProgressEvent) uploadID() string  { return e.UploadID }
func (e CompletedEvent) uploadID() string { return e.UploadID }
func (e FailedEvent) uploadID() string    { return e.UploadID }

// Controller owns the Session and is its only writer. It is not safe for
// concurrent use: the upload goroutine never touches the Session, it only sends
// events that the owner feeds back through Apply.
type Controller struct {
	session     Session
	transcriber Transcriber
	clipboard   Clipboard
	saver       Saver
	cancel      context.CancelFunc
}

// ControllerOption configures a Controller
type ControllerOption func(*Controller)

// WithClipboard sets the clipboard used by CopyToClipboard
func WithClipboard(c Clipboard) ControllerOption {
	return func(ctrl *Controller) {
		ctrl.clipboard = c
	}
}

// WithSaver sets where DownloadAsFile writes
func WithSaver(s Saver) ControllerOption {
	return func(ctrl *Controller) {
		ctrl.saver = s
	}
}

// NewController creates a controller with an empty session
func NewController(t Transcriber, opts ...ControllerOption) *Controller {
	c := &Controller{
		transcriber: t,
		clipboard:   SystemClipboard{},
		saver:       NewFileSaver("."),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns a snapshot of the current session
func (c *Controller) Session() Session {
	return c.session.clone()
}

// SelectFile takes the first of the dropped files. It is only allowed on an
// empty session; a rejected selection leaves the session untouched.
func (c *Controller) SelectFile(files ...*VideoFile) error {
	if c.session.Status != StatusEmpty {
		return &TransitionError{Op: "select a file", From: c.session.Status}
	}
	if len(files) == 0 || files[0] == nil {
		return &SelectionError{Err: ErrNoFile}
	}
	if len(files) > 1 {
		LogDebug("%d files dropped, keeping %s", len(files), files[0].Name)
	}

	file := *files[0]
	if !IsAcceptedVideo(file.Name) {
		return &SelectionError{Path: file.Path, Err: ErrUnsupportedType}
	}

	c.session = Session{File: &file, Status: StatusFileChosen}
	LogInfo("Selected %s (%s)", file.Name, file.HumanSize())
	return nil
}

// Submit starts uploading the chosen file. The returned channel delivers the
// upload's events and is closed once the upload goroutine is done.
func (c *Controller) Submit(ctx context.Context) (<-chan Event, error) {
	if c.session.Status != StatusFileChosen {
		return nil, &TransitionError{Op: "submit", From: c.session.Status}
	}

	file := *c.session.File
	uploadID := uuid.NewString()
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.session = Session{File: &file, Status: StatusUploading, Progress: 0, UploadID: uploadID}
	LogInfo("Uploading %s to transcription service [%s]", file.Name, uploadID)

	events := make(chan Event, 8)
	go runUpload(ctx, c.transcriber, file, uploadID, events)
	return events, nil
}

func runUpload(ctx context.Context, t Transcriber, file VideoFile, uploadID string, events chan<- Event) {
	defer close(events)

	send := func(ev Event) {
		select {
		case events <- ev:
		case <-ctx.Done():
		}
	}

	r, err := file.Open()
	if err != nil {
		send(FailedEvent{UploadID: uploadID, Err: err})
		return
	}
	defer func() { _ = r.Close() }()

	up := transcribe.Upload{
		Name:        file.Name,
		Size:        file.Size,
		ContentType: file.MIMEType,
		Body:        r,
		RequestID:   uploadID,
	}
	result, err := t.Transcribe(ctx, up, func(p int) {
		send(ProgressEvent{UploadID: uploadID, Percent: p})
	})
	if err != nil {
		send(FailedEvent{UploadID: uploadID, Err: err})
		return
	}
	if result == nil {
		send(FailedEvent{UploadID: uploadID, Err: errors.New("empty transcription result")})
		return
	}
	send(CompletedEvent{UploadID: uploadID, Result: result})
}

// Apply folds one upload event into the session. Events that do not belong to
// the current upload are dropped.
func (c *Controller) Apply(ev Event) {
	if ev == nil {
		return
	}
	if c.session.Status != StatusUploading || ev.uploadID() != c.session.UploadID {
		LogDebug("Ignoring stale %T for upload %s", ev, ev.uploadID())
		return
	}

	switch e := ev.(type) {
	case ProgressEvent:
		p := clampPercent(e.Percent)
		if p <= c.session.Progress {
			return
		}
		next := c.session.clone()
		next.Progress = p
		c.session = next

	case CompletedEvent:
		c.release()
		if e.Result == nil {
			c.fail(errors.New("empty transcription result"))
			return
		}
		c.session = Session{
			File:       c.session.File,
			Status:     StatusCompleted,
			Transcript: e.Result.Text,
			Segments:   toSegments(e.Result.Segments),
			Language:   e.Result.Language,
		}
		LogInfo("Transcription of %s completed (%d characters)", c.session.File.Name, len(e.Result.Text))

	case FailedEvent:
		c.release()
		c.fail(e.Err)
	}
}

func (c *Controller) fail(cause error) {
	err := &TranscriptionError{File: c.session.File.Name, UploadID: c.session.UploadID, Err: cause}
	LogError("%v", err)
	c.session = Session{
		File:         c.session.File,
		Status:       StatusFailed,
		ErrorMessage: TranscriptionFailedMessage,
	}
}

// Await applies every event from the channel until it is closed and returns the
// final session. An upload that ends without a result is recorded as failed.
func (c *Controller) Await(events <-chan Event, observe func(Session)) Session {
	uploadID := c.session.UploadID
	for ev := range events {
		c.Apply(ev)
		if observe != nil {
			observe(c.Session())
		}
	}
	if c.session.Status == StatusUploading && c.session.UploadID == uploadID {
		c.Apply(FailedEvent{UploadID: uploadID, Err: ErrUploadAbandoned})
		if observe != nil {
			observe(c.Session())
		}
	}
	return c.Session()
}

// EditText replaces the transcript text after a successful transcription
func (c *Controller) EditText(text string) error {
	if c.session.Status != StatusCompleted {
		return &TransitionError{Op: "edit the transcript", From: c.session.Status}
	}
	next := c.session.clone()
	next.Transcript = text
	c.session = next
	return nil
}

// Transcript returns the exportable transcript, or nil unless completed
func (c *Controller) Transcript() *Transcript {
	if c.session.Status != StatusCompleted {
		return nil
	}
	s := c.session.clone()
	t := &Transcript{
		Language: s.Language,
		Text:     s.Transcript,
		Segments: s.Segments,
	}
	if s.File != nil {
		t.Source = s.File.Name
	}
	return t
}

// CopyToClipboard places the transcript on the clipboard. Failures are logged
// and never change the session.
func (c *Controller) CopyToClipboard() bool {
	if c.session.Status != StatusCompleted {
		LogDebug("Nothing to copy while %s", c.session.Status)
		return false
	}
	if err := c.clipboard.WriteAll(c.session.Transcript); err != nil {
		LogWarn("%v", &ClipboardError{Err: err})
		return false
	}
	LogDebug("Copied %d characters to clipboard", len(c.session.Transcript))
	return true
}

// DownloadAsFile saves the transcript as transcript.txt and returns its path.
// Failures are logged and never change the session.
func (c *Controller) DownloadAsFile() (string, bool) {
	if c.session.Status != StatusCompleted {
		LogDebug("Nothing to download while %s", c.session.Status)
		return "", false
	}
	path, err := c.saver.Save(DownloadFileName, []byte(c.session.Transcript))
	if err != nil {
		LogWarn("%v", &DownloadError{Path: path, Err: err})
		return "", false
	}
	LogInfo("Saved transcript to %s", path)
	return path, true
}

// Reset returns to the empty session from any state. An in-flight upload is
// abandoned and its remaining events are ignored.
func (c *Controller) Reset() {
	if c.session.Status == StatusUploading {
		LogInfo("Abandoning upload %s", c.session.UploadID)
	}
	c.release()
	c.session = Session{}
}

func (c *Controller) release() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func toSegments(in []transcribe.Segment) []Segment {
	if len(in) == 0 {
		return nil
	}
	out := make([]Segment, len(in))
	for i, s := range in {
		out[i] = Segment{ID: s.ID, Start: s.Start, End: s.End, Text: s.Text}
	}
	return out
}
