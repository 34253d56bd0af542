package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zacharyhyde/listprofit/internal/ui/style"
)

// TableColumn represents a column configuration
type TableColumn struct {
	Header string
	Width  int
	Align  lipgloss.Position
}

// TableRow represents a row of data with an optional style override.
type TableRow struct {
	Data  []string
	Style *lipgloss.Style
}

// Table renders tabular data. Rows are display-only; the results table
// has nothing to select.
type Table struct {
	columns []TableColumn
	rows    []TableRow

	headerStyle lipgloss.Style
	rowStyle    lipgloss.Style
	borderStyle lipgloss.Style

	showBorder bool
}

// NewTable creates a new table component
func NewTable() *Table {
	palette := style.DefaultPalette()

	return &Table{
		columns: make([]TableColumn, 0),
		rows:    make([]TableRow, 0),

		headerStyle: lipgloss.NewStyle().
			Foreground(palette.Secondary).
			Bold(true).
			Padding(0, 1),

		rowStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Padding(0, 1),

		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.TextMuted),

		showBorder: true,
	}
}

// AddColumn adds a column to the table
func (t *Table) AddColumn(header string, width int, align lipgloss.Position) *Table {
	t.columns = append(t.columns, TableColumn{
		Header: header,
		Width:  width,
		Align:  align,
	})
	return t
}

// SetRows sets all table rows
func (t *Table) SetRows(rows [][]string) *Table {
	t.rows = make([]TableRow, len(rows))
	for i, rowData := range rows {
		t.rows[i] = TableRow{Data: rowData}
	}
	return t
}

// AddRow adds a row to the table
func (t *Table) AddRow(data []string) *Table {
	t.rows = append(t.rows, TableRow{Data: data})
	return t
}

// AddStyledRow adds a row rendered with a custom style.
func (t *Table) AddStyledRow(data []string, rowStyle lipgloss.Style) *Table {
	t.rows = append(t.rows, TableRow{Data: data, Style: &rowStyle})
	return t
}

// Clear removes all rows.
func (t *Table) Clear() *Table {
	t.rows = t.rows[:0]
	return t
}

// SetShowBorder enables/disables the outer border
func (t *Table) SetShowBorder(show bool) *Table {
	t.showBorder = show
	return t
}

// View renders the table
func (t *Table) View() string {
	if len(t.columns) == 0 {
		return ""
	}

	var content strings.Builder

	var headers []string
	for _, col := range t.columns {
		cell := t.headerStyle.Width(col.Width).Align(col.Align).Render(col.Header)
		headers = append(headers, cell)
	}
	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, headers...))
	content.WriteString("\n")

	for i, row := range t.rows {
		cellStyle := t.rowStyle
		if row.Style != nil {
			cellStyle = *row.Style
		}

		var cells []string
		for j, col := range t.columns {
			value := ""
			if j < len(row.Data) {
				value = row.Data[j]
			}
			cells = append(cells, cellStyle.Width(col.Width).Align(col.Align).Render(value))
		}
		content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))

		if i < len(t.rows)-1 {
			content.WriteString("\n")
		}
	}

	if t.showBorder {
		return t.borderStyle.Render(content.String())
	}
	return content.String()
}
