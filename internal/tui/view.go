package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/hollisb/fauxterm/internal/palette"
	"github.com/hollisb/fauxterm/internal/term"
)

// Frame chrome: a thick border plus one padding cell per side.
const (
	chromeWidth  = 4
	chromeHeight = 2

	// Every third row carries the scanline shade.
	scanlineStep = 3
)

// columnsFor maps the host terminal width to the fake terminal's column
// budget.
func columnsFor(width int) int {
	cols := width - chromeWidth
	if cols < 1 {
		cols = 1
	}
	return cols
}

// renderFrame draws one frame into the host terminal: bordered box,
// scanline filter, message area on top, input line at the bottom.
// Styles are rebuilt per frame because the script can recolor the
// terminal at any step.
func renderFrame(f term.Frame, width, height int) string {
	innerW := width - chromeWidth
	innerH := height - chromeHeight
	if innerW < 1 || innerH < 1 {
		return ""
	}

	bg := f.Background.Lipgloss()
	fg := f.Foreground.Lipgloss()

	base := lipgloss.NewStyle().Foreground(fg).Background(bg)
	scan := base
	if f.Scanlines {
		scan = base.Background(palette.ScanlineShade(f.Background, f.Foreground).Lipgloss())
	}

	rows := contentRows(f, innerW, innerH)

	var b strings.Builder
	for i, row := range rows {
		style := base
		if f.Scanlines && i%scanlineStep == 0 {
			style = scan
		}
		b.WriteString(style.Width(innerW).Render(truncate(row, innerW)))
		if i < len(rows)-1 {
			b.WriteByte('\n')
		}
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(fg).
		BorderBackground(bg).
		Background(bg).
		Padding(0, 1)
	return frame.Render(b.String())
}

// contentRows lays the frame out into exactly innerH rows. Art blocks
// center in the whole area; messages start at the top with the input
// line pinned to the bottom row.
func contentRows(f term.Frame, innerW, innerH int) []string {
	rows := make([]string, innerH)

	if f.Art {
		start := (innerH - len(f.Lines)) / 2
		if start < 0 {
			start = 0
		}
		for i, line := range f.Lines {
			r := start + i
			if r >= innerH {
				break
			}
			rows[r] = centerRow(line, innerW)
		}
		return rows
	}

	for i, line := range f.Lines {
		if i >= innerH-2 {
			break
		}
		rows[i] = line
	}

	var input strings.Builder
	if f.Marker {
		input.WriteString("> ")
	}
	if f.InputVisible {
		input.WriteString(f.Input)
	}
	if f.CursorOn {
		input.WriteString(term.TypingCursor)
	}
	rows[innerH-1] = input.String()

	return rows
}

func centerRow(line string, width int) string {
	pad := (width - utf8.RuneCountInString(line)) / 2
	if pad < 1 {
		return line
	}
	return strings.Repeat(" ", pad) + line
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width])
}
