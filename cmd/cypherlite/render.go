package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/rlch/cypherlite"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DDDDDD"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

func colorEnabled() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// renderResult lays the result out as an aligned text table. Styling is
// applied only on a TTY so piped output stays plain.
func renderResult(res *cypherlite.Result) string {
	color := colorEnabled()

	widths := make([]int, len(res.Columns))
	for i, col := range res.Columns {
		widths[i] = len(col)
	}
	cells := make([][]string, len(res.Rows))
	for r, row := range res.Rows {
		cells[r] = make([]string, len(res.Columns))
		for i, col := range res.Columns {
			s := fmt.Sprintf("%v", row[col])
			cells[r][i] = s
			if len(s) > widths[i] {
				widths[i] = len(s)
			}
		}
	}

	var b strings.Builder
	for i, col := range res.Columns {
		padded := pad(col, widths[i])
		if color {
			padded = headerStyle.Render(padded)
		}
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(padded)
	}
	b.WriteString("\n")

	for _, row := range cells {
		for i, cell := range row {
			padded := pad(cell, widths[i])
			if color {
				padded = cellStyle.Render(padded)
			}
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(padded)
		}
		b.WriteString("\n")
	}

	summary := fmt.Sprintf("%d row(s)", len(res.Rows))
	if color {
		summary = dimStyle.Render(summary)
	}
	b.WriteString(summary)
	b.WriteString("\n")

	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
