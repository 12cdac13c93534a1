package xdoc

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles defines the visual theme for terminal report output.
// Lipgloss automatically degrades to no-color when output is not a TTY.
type Styles struct {
	// Header is used for per-class headers (e.g. "=== com.example.Foo ===").
	Header lipgloss.Style

	// SubHeader is used for secondary information lines.
	SubHeader lipgloss.Style

	// High through Ignore color-code severity display names.
	High   lipgloss.Style
	Normal lipgloss.Style
	Low    lipgloss.Style
	Exp    lipgloss.Style
	Ignore lipgloss.Style

	// Invalid styles the fallback name for unrecognized priorities.
	Invalid lipgloss.Style

	// TableHeader styles the header row of tables.
	TableHeader lipgloss.Style

	// TableCell styles regular table cells.
	TableCell lipgloss.Style

	// Border is used for table borders.
	Border lipgloss.Style

	// Muted is used for de-emphasized text.
	Muted lipgloss.Style
}

// DefaultStyles returns the default color scheme for terminal reports.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		SubHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		High:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Normal: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Low:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Exp:    lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		Ignore: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		Invalid: lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Bold(true),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		TableCell:   lipgloss.NewStyle().PaddingRight(1),

		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),

		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// SeverityStyle returns the appropriate style for a severity display
// name.
func (s Styles) SeverityStyle(name string) lipgloss.Style {
	switch name {
	case "High":
		return s.High
	case "Normal":
		return s.Normal
	case "Low":
		return s.Low
	case "Exp":
		return s.Exp
	case "Ignore":
		return s.Ignore
	case "Invalid Priority":
		return s.Invalid
	default:
		return s.Muted
	}
}
