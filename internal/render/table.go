package render

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// userTableColumns aligns both columns left, header included.
//
//nolint:gochecknoglobals // Read-only column layout.
var userTableColumns = []table.ColumnConfig{
	{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
}

// newUserTable draws a two-column box table. The first row is the header.
// Cells are padded by display width, so wide runes stay aligned.
func newUserTable(rows [][2]string) string {
	style := table.StyleLight
	style.Format.Header = text.FormatDefault

	writer := table.NewWriter()
	writer.SetStyle(style)
	writer.SetColumnConfigs(userTableColumns)

	for i, row := range rows {
		if i == 0 {
			writer.AppendHeader(table.Row{row[0], row[1]})

			continue
		}

		writer.AppendRow(table.Row{row[0], row[1]})
	}

	return writer.Render() + "\n"
}
