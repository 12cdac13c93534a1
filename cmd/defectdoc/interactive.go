package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/unbound-force/defectdoc/internal/xdoc"
)

// keyMap defines keybindings for the interactive TUI.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Quit, k.Help},
	}
}

var defaultKeyMap = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("^/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("v/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

// Styles for the TUI.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	tuiHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	tuiBorderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))
)

// reportModel is the Bubble Tea model for browsing an xdoc report.
type reportModel struct {
	report   *xdoc.Report
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	ready    bool
	content  string
}

func newReportModel(rep *xdoc.Report) reportModel {
	h := help.New()
	content := renderReportContent(rep)
	return reportModel{
		report:  rep,
		help:    h,
		keys:    defaultKeyMap,
		content: content,
	}
}

func renderReportContent(rep *xdoc.Report) string {
	var sb strings.Builder
	styles := xdoc.DefaultStyles()

	totalBugs := 0
	for _, f := range rep.Files {
		totalBugs += len(f.Bugs)
	}

	sb.WriteString(titleStyle.Render(
		fmt.Sprintf("Defect Report: %d class(es), %d defect(s)",
			len(rep.Files), totalBugs)))
	sb.WriteString("\n\n")

	for _, file := range rep.Files {
		sb.WriteString(tuiHeaderStyle.Render(fmt.Sprintf("=== %s ===", file.ClassName)))
		sb.WriteString("\n")

		if len(file.Bugs) == 0 {
			sb.WriteString(statusStyle.Render("    No defects recorded."))
			sb.WriteString("\n\n")
			continue
		}

		// Build defect table.
		rows := make([][]string, 0, len(file.Bugs))
		for _, b := range file.Bugs {
			msg := xdoc.Truncate(b.Message, 50)
			line := strconv.Itoa(b.LineNumber)
			if b.LineNumber < 0 {
				line = "-"
			}
			rows = append(rows, []string{
				b.Priority,
				line,
				b.Type,
				msg,
			})
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(tuiBorderStyle).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return tuiHeaderStyle
				}
				if col == 0 && row >= 0 && row < len(rows) {
					return styles.SeverityStyle(rows[row][0])
				}
				return lipgloss.NewStyle()
			}).
			Headers("PRIORITY", "LINE", "TYPE", "MESSAGE").
			Rows(rows...)

		sb.WriteString(t.String())
		sb.WriteString("\n\n")
	}

	if len(rep.Diagnostics.AnalysisErrors) > 0 || len(rep.Diagnostics.MissingClasses) > 0 {
		sb.WriteString(tuiHeaderStyle.Render("=== Diagnostics ==="))
		sb.WriteString("\n")
		for _, msg := range rep.Diagnostics.AnalysisErrors {
			sb.WriteString(statusStyle.Render(fmt.Sprintf("    error: %s", msg)))
			sb.WriteString("\n")
		}
		for _, cls := range rep.Diagnostics.MissingClasses {
			sb.WriteString(statusStyle.Render(fmt.Sprintf("    missing: %s", cls)))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func (m reportModel) Init() tea.Cmd {
	return nil
}

func (m reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 0
		footerHeight := 2
		verticalMargin := headerHeight + footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-verticalMargin)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - verticalMargin
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m reportModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	footer := statusStyle.Render(
		fmt.Sprintf(" %3.f%% ", m.viewport.ScrollPercent()*100)) +
		" " + m.help.View(m.keys)

	return m.viewport.View() + "\n" + footer
}

// runInteractiveReport launches the Bubble Tea TUI for browsing an
// xdoc report.
func runInteractiveReport(rep *xdoc.Report) error {
	model := newReportModel(rep)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
