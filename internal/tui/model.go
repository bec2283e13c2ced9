package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/iksnae/video-transcriber/internal"
)

const noticeTTL = 3 * time.Second

// uploadEventMsg carries one event from the upload goroutine
type uploadEventMsg struct {
	event    internal.Event
	events   <-chan internal.Event
	uploadID string
}

// uploadClosedMsg is sent once the upload goroutine closed its channel
type uploadClosedMsg struct {
	uploadID string
}

type noticeExpiredMsg struct {
	id int
}

// Model is the bubbletea model for the transcriber screen. All session changes
// go through the controller from Update, which bubbletea runs on one goroutine.
type Model struct {
	ctx  context.Context
	ctrl *internal.Controller

	picker  filepicker.Model
	editor  textarea.Model
	bar     progress.Model
	spinner spinner.Model
	help    help.Model
	keys    KeyMap

	notice    string
	noticeErr bool
	noticeID  int

	width  int
	height int
}

// NewModel creates the model. startDir is where the file browser opens.
func NewModel(ctx context.Context, ctrl *internal.Controller, startDir string) Model {
	fp := filepicker.New()
	fp.AllowedTypes = internal.AcceptedExtensions
	fp.CurrentDirectory = startDir
	fp.AutoHeight = true
	fp.ShowPermissions = false

	ta := textarea.New()
	ta.CharLimit = 0 // No limit
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.Placeholder = "Transcript is empty"
	ta.SetWidth(80)
	ta.SetHeight(12)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = StatusRunningStyle

	return Model{
		ctx:     ctx,
		ctrl:    ctrl,
		picker:  fp,
		editor:  ta,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(50)),
		spinner: sp,
		help:    help.New(),
		keys:    DefaultKeyMap(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.picker.Init()
}

// waitForEvent blocks on the upload channel and hands the next event to Update
func waitForEvent(events <-chan internal.Event, uploadID string) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return uploadClosedMsg{uploadID: uploadID}
		}
		return uploadEventMsg{event: ev, events: events, uploadID: uploadID}
	}
}

func (m *Model) setNotice(text string, isErr bool) tea.Cmd {
	m.noticeID++
	m.notice = text
	m.noticeErr = isErr
	id := m.noticeID
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.bar.Width = min(max(msg.Width-20, 10), 60)
		m.editor.SetWidth(max(msg.Width-4, 20))
		m.editor.SetHeight(max(msg.Height-14, 5))

	case uploadEventMsg:
		completes := m.completesUpload(msg.event)
		m.ctrl.Apply(msg.event)
		cmds := []tea.Cmd{waitForEvent(msg.events, msg.uploadID)}
		if completes && m.ctrl.Session().Status == internal.StatusCompleted {
			cmds = append(cmds, m.showTranscript())
		}
		return m, tea.Batch(cmds...)

	case uploadClosedMsg:
		s := m.ctrl.Session()
		if s.Status == internal.StatusUploading && s.UploadID == msg.uploadID {
			m.ctrl.Apply(internal.FailedEvent{UploadID: msg.uploadID, Err: internal.ErrUploadAbandoned})
		}
		return m, nil

	case noticeExpiredMsg:
		if msg.id == m.noticeID {
			m.notice = ""
		}
		return m, nil

	case spinner.TickMsg:
		if m.ctrl.Session().Status != internal.StatusUploading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActive(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	status := m.ctrl.Session().Status
	keys := m.keys.forStatus(status)

	switch {
	case key.Matches(msg, keys.Quit):
		m.ctrl.Reset()
		return m, tea.Quit

	case key.Matches(msg, keys.Copy):
		if m.ctrl.CopyToClipboard() {
			return m, m.setNotice("Copied transcript to clipboard", false)
		}
		return m, m.setNotice("Could not copy to clipboard", true)

	case key.Matches(msg, keys.Download):
		if path, ok := m.ctrl.DownloadAsFile(); ok {
			return m, m.setNotice(fmt.Sprintf("Saved %s", path), false)
		}
		return m, m.setNotice("Could not save transcript", true)

	case key.Matches(msg, keys.Reset):
		m.ctrl.Reset()
		m.editor.Reset()
		m.editor.Blur()
		m.notice = ""
		return m, m.picker.Init()
	}

	if status == internal.StatusEmpty && msg.Paste {
		return m.selectAndSubmit(parseDroppedPaths(string(msg.Runes)))
	}
	return m.updateActive(msg)
}

// updateActive forwards msg to the component that owns the current screen
func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.ctrl.Session().Status {
	case internal.StatusEmpty:
		m.picker, cmd = m.picker.Update(msg)
		if ok, path := m.picker.DidSelectFile(msg); ok {
			return m.selectAndSubmit([]string{path})
		}
		if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
			return m, tea.Batch(cmd, m.setNotice(fmt.Sprintf("%s is not a supported video file", path), true))
		}
		return m, cmd

	case internal.StatusCompleted:
		m.editor, cmd = m.editor.Update(msg)
		if m.editor.Value() != m.ctrl.Session().Transcript {
			if err := m.ctrl.EditText(m.editor.Value()); err != nil {
				internal.LogDebug("edit rejected: %v", err)
			}
		}
		return m, cmd
	}
	return m, nil
}

// selectAndSubmit selects the first dropped file and starts its upload. A
// rejected file leaves the session empty and only shows a notice.
func (m Model) selectAndSubmit(paths []string) (tea.Model, tea.Cmd) {
	if len(paths) == 0 {
		return m, nil
	}

	file, err := internal.NewVideoFile(paths[0])
	if err != nil {
		internal.LogDebug("rejected drop: %v", err)
		return m, m.setNotice(selectionNotice(paths[0], err), true)
	}
	if err := m.ctrl.SelectFile(file); err != nil {
		return m, m.setNotice(err.Error(), true)
	}

	events, err := m.ctrl.Submit(m.ctx)
	if err != nil {
		return m, m.setNotice(err.Error(), true)
	}
	m.notice = ""
	return m, tea.Batch(waitForEvent(events, m.ctrl.Session().UploadID), m.spinner.Tick)
}

func selectionNotice(path string, err error) string {
	switch {
	case errors.Is(err, internal.ErrUnsupportedType):
		return fmt.Sprintf("%s is not a supported video file", path)
	case errors.Is(err, internal.ErrNotAFile):
		return fmt.Sprintf("%s is a directory", path)
	case errors.Is(err, os.ErrNotExist):
		return fmt.Sprintf("%s does not exist", path)
	default:
		return err.Error()
	}
}

// completesUpload reports whether ev finishes the upload in flight. Late
// events from an abandoned upload must not reload the editor.
func (m Model) completesUpload(ev internal.Event) bool {
	done, ok := ev.(internal.CompletedEvent)
	s := m.ctrl.Session()
	return ok && s.Status == internal.StatusUploading && done.UploadID == s.UploadID
}

func (m *Model) showTranscript() tea.Cmd {
	m.editor.SetValue(m.ctrl.Session().Transcript)
	m.editor.CursorStart()
	return m.editor.Focus()
}
