package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/iksnae/video-transcriber/internal"
)

// KeyMap defines the key bindings for the application
type KeyMap struct {
	Copy     key.Binding
	Download key.Binding
	Reset    key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy"),
		),
		Download: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "download"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+n", "esc"),
			key.WithHelp("ctrl+n", "new file"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// forStatus enables only the bindings that make sense in status
func (k KeyMap) forStatus(status internal.Status) KeyMap {
	completed := status == internal.StatusCompleted
	k.Copy.SetEnabled(completed)
	k.Download.SetEnabled(completed)
	k.Reset.SetEnabled(status != internal.StatusEmpty)
	return k
}

// ShortHelp returns a short help string
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Download, k.Reset, k.Quit}
}

// FullHelp returns the full help string
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Copy, k.Download}, {k.Reset, k.Quit}}
}
