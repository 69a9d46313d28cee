package command

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/avolkov/primdb/internal/engine"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// renderRows renders rows as a bordered table, columns in schema order.
func renderRows(t *engine.Table, rows []map[string]any) string {
	names := t.ColumnNames()
	cells := make([][]string, len(rows))
	for i, row := range rows {
		line := make([]string, len(names))
		for j, name := range names {
			line[j] = engine.FormatValue(row[name])
		}
		cells[i] = line
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(names...).
		Rows(cells...).
		String()
}
