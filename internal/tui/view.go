package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/video-transcriber/internal"
)

// View renders the screen for the current session
func (m Model) View() string {
	s := m.ctrl.Session()

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Video Transcriber"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Upload a video and get its transcript"))
	b.WriteString("\n")

	switch s.Status {
	case internal.StatusEmpty:
		b.WriteString(m.dropZone())
		b.WriteString("\n")
		b.WriteString(m.picker.View())

	case internal.StatusFileChosen:
		b.WriteString(fileCard(s.File))
		b.WriteString("\n")
		b.WriteString(DimStyle.Render("Ready to transcribe"))

	case internal.StatusUploading:
		b.WriteString(fileCard(s.File))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("%s %s\n", m.spinner.View(), StatusRunningStyle.Render(fmt.Sprintf("Transcribing... %d%%", s.Progress))))
		b.WriteString(m.bar.ViewAs(float64(s.Progress) / 100))

	case internal.StatusFailed:
		b.WriteString(fileCard(s.File))
		b.WriteString("\n")
		b.WriteString(ErrorBannerStyle.Render(s.ErrorMessage))

	case internal.StatusCompleted:
		b.WriteString(fileCard(s.File))
		b.WriteString("\n\n")
		b.WriteString(SectionHeaderStyle.Render("Transcript"))
		if s.Language != "" {
			b.WriteString(DimStyle.Render(fmt.Sprintf("  (%s)", s.Language)))
		}
		b.WriteString("\n")
		b.WriteString(m.editor.View())
	}

	b.WriteString("\n")
	if m.notice != "" {
		style := NoticeStyle
		if m.noticeErr {
			style = WarningStyle
		}
		b.WriteString(style.Render(m.notice))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys.forStatus(s.Status)))

	return b.String()
}

func (m Model) dropZone() string {
	accepted := strings.ToUpper(strings.Join(trimDots(internal.AcceptedExtensions), ", "))
	text := lipgloss.JoinVertical(lipgloss.Center,
		"Drag and drop a video file here, or choose one below",
		DimStyle.Render("Accepted: "+accepted),
	)
	zone := DropZoneStyle
	if m.width > 8 {
		zone = zone.Width(min(m.width-4, 72))
	}
	return zone.Render(text)
}

func fileCard(f *internal.VideoFile) string {
	if f == nil {
		return ""
	}
	return CardStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		FileNameStyle.Render(f.Name),
		DimStyle.Render("  "+f.HumanSize()),
	))
}

func trimDots(exts []string) []string {
	out := make([]string, len(exts))
	for i, e := range exts {
		out[i] = strings.TrimPrefix(e, ".")
	}
	return out
}
