package tui

import (
	"net/url"
	"strings"

	"github.com/kballard/go-shellquote"
)

// parseDroppedPaths turns text pasted by a terminal when files are dragged onto
// it into file paths. Terminals shell-quote the paths and some send file:// URIs.
func parseDroppedPaths(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	words, err := shellquote.Split(text)
	if err != nil {
		// Unbalanced quotes: treat the whole paste as one path
		words = []string{strings.Trim(text, `"'`)}
	}

	paths := make([]string, 0, len(words))
	for _, w := range words {
		if strings.HasPrefix(w, "file://") {
			if u, err := url.Parse(w); err == nil && u.Path != "" {
				w = u.Path
			}
		}
		if w != "" {
			paths = append(paths, w)
		}
	}
	return paths
}
