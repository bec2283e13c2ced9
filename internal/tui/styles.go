package tui

import "github.com/charmbracelet/lipgloss"

// One Dark Pro color palette
var (
	ColorFgPrimary = lipgloss.Color("#ABB2BF")
	ColorFgMuted   = lipgloss.Color("#636B78")
	ColorRed       = lipgloss.Color("#E06C75")
	ColorGreen     = lipgloss.Color("#98C379")
	ColorYellow    = lipgloss.Color("#E5C07B")
	ColorBlue      = lipgloss.Color("#61AFEF")
	ColorMagenta   = lipgloss.Color("#C678DD")
	ColorBorder    = lipgloss.Color("#3F4451")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted).
			MarginBottom(1)

	// Drop target, dashed like a dropzone
	DropZoneStyle = lipgloss.NewStyle().
			Border(lipgloss.Border{
			Top: "╌", Bottom: "╌", Left: "╎", Right: "╎",
			TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
		}).
		BorderForeground(ColorBorder).
		Padding(1, 4).
		Align(lipgloss.Center)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 2)

	FileNameStyle = lipgloss.NewStyle().
			Foreground(ColorFgPrimary).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted)

	StatusRunningStyle = lipgloss.NewStyle().
				Foreground(ColorBlue).
				Bold(true)

	SectionHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorBlue).
				Bold(true)

	ErrorBannerStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(ColorRed).
				Foreground(ColorRed).
				PaddingLeft(1).
				MarginTop(1)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)
)
