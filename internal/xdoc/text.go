package xdoc

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// WriteText writes the report as human-readable styled text to the
// writer. Output uses lipgloss for color and formatting when the
// output is a TTY; degrades gracefully for pipes and CI.
func WriteText(w io.Writer, rep *Report) error {
	s := DefaultStyles()

	header := fmt.Sprintf("Analyzer %s", rep.Version)
	if rep.Threshold != "" {
		header += fmt.Sprintf(", threshold %s", rep.Threshold)
	}
	if rep.Effort != "" {
		header += fmt.Sprintf(", effort %s", rep.Effort)
	}
	fmt.Fprintln(w, s.Header.Render(header))

	for _, file := range rep.Files {
		fmt.Fprintln(w)
		writeOneFile(w, file, s)
	}

	if len(rep.Diagnostics.AnalysisErrors) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.Muted.Render("Analysis errors:"))
		for _, msg := range rep.Diagnostics.AnalysisErrors {
			fmt.Fprintf(w, "  - %s\n", msg)
		}
	}
	if len(rep.Diagnostics.MissingClasses) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.Muted.Render("Missing classes:"))
		for _, cls := range rep.Diagnostics.MissingClasses {
			fmt.Fprintf(w, "  - %s\n", cls)
		}
	}

	if rep.Project != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.Muted.Render("Source directories:"))
		for _, dir := range rep.Project.SrcDirs {
			fmt.Fprintf(w, "  - %s\n", dir)
		}
	}

	// Summary line.
	total := 0
	for _, f := range rep.Files {
		total += len(f.Bugs)
	}
	fmt.Fprintf(w, "\n%s\n",
		s.Header.Render(fmt.Sprintf(
			"%d class(es) reported, %d defect(s)",
			len(rep.Files), total)))

	return nil
}

func writeOneFile(w io.Writer, file FileReport, s Styles) {
	fmt.Fprintln(w, s.Header.Render(fmt.Sprintf("=== %s ===", file.ClassName)))

	if len(file.Bugs) == 0 {
		fmt.Fprintln(w, s.Muted.Render("    No defects recorded."))
		return
	}

	// Keep rows near an 80-col budget; the message column absorbs
	// the truncation so priority names and type codes stay intact.
	const maxMessage = 29
	rows := make([][]string, 0, len(file.Bugs))
	for _, b := range file.Bugs {
		msg := Truncate(b.Message, maxMessage)
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
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			if col == 0 && row >= 0 && row < len(rows) {
				return s.SeverityStyle(rows[row][0])
			}
			return s.TableCell
		}).
		Headers("PRIORITY", "LINE", "TYPE", "MESSAGE").
		Rows(rows...)

	fmt.Fprintln(w, t)
}

// Truncate shortens s to at most max characters, cutting on rune
// boundaries so multi-byte text never yields invalid UTF-8.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
