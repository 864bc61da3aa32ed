package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"clockify-report/internal/report"
)

const (
	colGap      = 2
	emptyCell   = "-"
	separatorCh = "─"
)

var (
	styleTitle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#83a598")).Bold(true)
	styleHeader = lipgloss.NewStyle().Foreground(lipgloss.Color("#fe8019")).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("#928374"))
)

// Table implements ports.Renderer as an aligned text table.
type Table struct {
	w     io.Writer
	color bool
}

// NewTable returns a table renderer writing to w. Styling is applied only
// when color is set.
func NewTable(w io.Writer, color bool) *Table {
	return &Table{w: w, color: color}
}

// Display writes the title, a header row, a separator and the data rows.
// Columns are padded to the widest visible cell.
func (t *Table) Display(tbl report.Table) error {
	if len(tbl.Columns) == 0 {
		return nil
	}
	cols := len(tbl.Columns)

	widths := make([]int, cols)
	for i, h := range tbl.Columns {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range tbl.Rows {
		for i := 0; i < cols; i++ {
			if w := lipgloss.Width(cell(row, i)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	if tbl.Title != "" {
		b.WriteString(t.style(styleTitle, tbl.Title))
		b.WriteString("\n")
	}
	writeRow(&b, tbl.Columns, widths, func(s string) string { return t.style(styleHeader, s) })

	sep := make([]string, cols)
	for i, w := range widths {
		sep[i] = strings.Repeat(separatorCh, w)
	}
	writeRow(&b, sep, widths, func(s string) string { return t.style(styleDim, s) })

	for _, row := range tbl.Rows {
		cells := make([]string, cols)
		for i := range cells {
			cells[i] = cell(row, i)
		}
		writeRow(&b, cells, widths, nil)
	}
	b.WriteString("\n")

	_, err := fmt.Fprint(t.w, b.String())
	return err
}

func (t *Table) style(s lipgloss.Style, text string) string {
	if !t.color {
		return text
	}
	return s.Render(text)
}

// writeRow pads each cell to its column width. The last column is not padded.
func writeRow(b *strings.Builder, cells []string, widths []int, style func(string) string) {
	for i, c := range cells {
		pad := widths[i] - lipgloss.Width(c)
		if pad < 0 {
			pad = 0
		}
		if style != nil {
			c = style(c)
		}
		b.WriteString(c)
		if i < len(cells)-1 {
			b.WriteString(strings.Repeat(" ", pad+colGap))
		}
	}
	b.WriteString("\n")
}

func cell(row []string, i int) string {
	if i >= len(row) || row[i] == "" {
		return emptyCell
	}
	return row[i]
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
