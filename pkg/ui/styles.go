package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	// Color palette using terminal colors for consistency
	ColorSuccess = lipgloss.AdaptiveColor{Light: "2", Dark: "2"} // Green
	ColorError   = lipgloss.AdaptiveColor{Light: "1", Dark: "1"} // Red
	ColorPrimary = lipgloss.AdaptiveColor{Light: "5", Dark: "5"} // Magenta/Purple
	ColorInfo    = lipgloss.AdaptiveColor{Light: "6", Dark: "6"} // Cyan
	ColorMuted   = lipgloss.AdaptiveColor{Light: "8", Dark: "8"} // Gray
	ColorWarning = lipgloss.AdaptiveColor{Light: "3", Dark: "3"} // Yellow
	ColorAccent  = lipgloss.AdaptiveColor{Light: "4", Dark: "4"} // Blue
	ColorDefault = lipgloss.AdaptiveColor{Light: "0", Dark: "7"}

	// Base styles
	StyleSuccess lipgloss.Style
	StyleError   lipgloss.Style
	StylePrimary lipgloss.Style
	StyleInfo    lipgloss.Style
	StyleMuted   lipgloss.Style
	StyleWarning lipgloss.Style
	StyleAccent  lipgloss.Style

	// Component styles
	StyleTitle       lipgloss.Style
	StyleHeader      lipgloss.Style
	StyleSubtle      lipgloss.Style
	StyleBold        lipgloss.Style
	StyleBadge       lipgloss.Style
	StyleTableHeader lipgloss.Style
	StyleTableRow    lipgloss.Style
	StyleTableRowAlt lipgloss.Style
	StyleTableBorder lipgloss.Style

	// Gallery styles
	StyleCard         lipgloss.Style
	StyleCardActive   lipgloss.Style
	StyleCardSkeleton lipgloss.Style
	StyleOverlay      lipgloss.Style

	// Status icons
	IconSuccess  = "✔"
	IconError    = "✘"
	IconRocket   = "🚀"
	IconInfo     = "ℹ"
	IconWarning  = "⚠"
	IconArtwork  = "🖼"
	IconFeatured = "★"
	IconUpload   = "⇪"
)

func init() {
	SetTheme("auto")
}

// SetTheme applies the specified color theme ("auto", "dark", "light", "none")
func SetTheme(theme string) {
	switch theme {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	default:
		// Auto: lipgloss detects automatically
	}

	color := func(c lipgloss.TerminalColor) lipgloss.Style {
		if theme == "none" {
			return lipgloss.NewStyle()
		}
		return lipgloss.NewStyle().Foreground(c)
	}

	StyleSuccess = color(ColorSuccess).Bold(true)
	StyleError = color(ColorError).Bold(true)
	StylePrimary = color(ColorPrimary).Bold(true)
	StyleInfo = color(ColorInfo)
	StyleMuted = color(ColorMuted)
	StyleWarning = color(ColorWarning).Bold(true)
	StyleAccent = color(ColorAccent)

	StyleTitle = color(ColorPrimary).Bold(true).Underline(true)
	StyleHeader = color(ColorPrimary).Bold(true)
	StyleSubtle = color(ColorMuted).Italic(true)
	StyleBold = lipgloss.NewStyle().Bold(true)
	StyleBadge = color(ColorAccent).Bold(true)

	StyleTableHeader = color(ColorPrimary).Bold(true).Align(lipgloss.Left)
	StyleTableRow = color(ColorDefault)
	StyleTableRowAlt = color(ColorDefault).Faint(true)
	StyleTableBorder = color(ColorMuted)

	border := ColorMuted
	active := ColorPrimary
	if theme == "none" {
		border, active = ColorDefault, ColorDefault
	}
	StyleCard = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
	StyleCardActive = StyleCard.
		BorderForeground(active).
		BorderStyle(lipgloss.ThickBorder())
	StyleCardSkeleton = StyleCard.
		BorderStyle(lipgloss.NormalBorder()).
		Faint(true)
	StyleOverlay = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(active).
		Padding(1, 2)
}

// FormatSuccess returns a success message with icon
func FormatSuccess(msg string) string {
	return StyleSuccess.Render(IconSuccess + " " + msg)
}

// FormatError returns an error message with icon
func FormatError(msg string) string {
	return StyleError.Render(IconError + " " + msg)
}

// FormatInfo returns an info message with icon
func FormatInfo(msg string) string {
	return StyleInfo.Render(IconInfo + " " + msg)
}

// FormatWarning returns a warning message with icon
func FormatWarning(msg string) string {
	return StyleWarning.Render(IconWarning + " " + msg)
}

// FormatRocket returns a rocket message (for exciting actions)
func FormatRocket(msg string) string {
	return StylePrimary.Render(IconRocket + " " + msg)
}

// FormatTitle returns a formatted title
func FormatTitle(title string) string {
	return StyleTitle.Render(title)
}

// FormatMuted returns muted/subtle text
func FormatMuted(text string) string {
	return StyleMuted.Render(text)
}

// FormatBold returns bold text
func FormatBold(text string) string {
	return StyleBold.Render(text)
}

// FormatBadge renders a short label such as a category
func FormatBadge(label string) string {
	if label == "" {
		return ""
	}
	return StyleBadge.Render("[" + label + "]")
}

// Truncate shortens s to at most width display cells, ending with an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// WrapWords wraps s at word boundaries so no line exceeds width cells.
// Words longer than width are truncated.
func WrapWords(s string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	var line string
	for _, word := range strings.Fields(s) {
		if runewidth.StringWidth(word) > width {
			word = runewidth.Truncate(word, width, "…")
		}
		switch {
		case line == "":
			line = word
		case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// ClampLines keeps at most n wrapped lines of s, marking the cut with an ellipsis
func ClampLines(s string, width, n int) string {
	if n <= 0 || width <= 0 {
		return ""
	}

	lines := WrapWords(s, width)
	if len(lines) <= n {
		return strings.Join(lines, "\n")
	}

	lines = lines[:n]
	last := lines[n-1]
	if runewidth.StringWidth(last) >= width {
		last = runewidth.Truncate(last, width-1, "")
	}
	lines[n-1] = last + "…"
	return strings.Join(lines, "\n")
}
