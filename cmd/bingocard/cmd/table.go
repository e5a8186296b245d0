package cmd

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/dbmrq/bingocard/internal/tiles"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// tileColumnWidth caps the tile columns; longer tiles wrap.
const tileColumnWidth = 40

// renderTable renders rows under headers. Columns listed in wrap are capped
// at tileColumnWidth characters.
func renderTable(headers []string, rows [][]string, aligns []columnAlignment, wrap ...int) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	wrapped := make(map[int]bool, len(wrap))
	for _, i := range wrap {
		wrapped[i] = true
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		cc := table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		}
		if wrapped[i] {
			cc.WidthMax = tileColumnWidth
			cc.WidthMaxEnforcer = text.WrapSoft
		}
		columnConfigs = append(columnConfigs, cc)
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// renderFindings lays out a tile report as a table, one finding per row.
func renderFindings(report *tiles.Report) string {
	rows := make([][]string, 0, len(report.Findings))
	for _, f := range report.Findings {
		b := f.B
		if f.Kind == tiles.FindingDuplicate && f.B == f.A {
			b = "(repeated)"
		}
		rows = append(rows, []string{
			string(f.Kind),
			fmt.Sprintf("%d", f.Distance),
			displayTile(f.A),
			displayTile(b),
		})
	}
	return renderTable(
		[]string{"Kind", "Distance", "Tile", "Similar to"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft},
		2, 3,
	)
}

// displayTile shows in-cell line breaks as the \n users typed.
func displayTile(s string) string {
	return strings.ReplaceAll(s, "\n", `\n`)
}
