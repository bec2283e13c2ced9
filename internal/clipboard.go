package internal

import "github.com/atotto/clipboard"

// Clipboard is write-only access to a clipboard
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the operating system clipboard
type SystemClipboard struct{}

// WriteAll copies text to the system clipboard
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// ClipboardAvailable reports whether a clipboard utility was found on this system
func ClipboardAvailable() bool {
	return !clipboard.Unsupported
}
