package bench

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func newTableStyle() *table.Style {
	style := table.Style{
		Name:    "StyleRounded",
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
		Color:   table.ColorOptionsDefault,
	}
	style.Format.Header = text.FormatDefault
	return &style
}

// Render writes the report as a table, one row per variant in ranked
// order.
func (r *Report) Render(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(*newTableStyle())
	t.AppendHeader(table.Row{
		"f", "mean", "mean excl. 1st",
		"best mean ratio", "best mean1 ratio",
		"next mean ratio", "next mean1 ratio",
		"t0", "t1", "t2",
	})
	for _, row := range r.Rows {
		t.AppendRow(table.Row{
			row.Label,
			row.Mean,
			row.MeanExclFirst,
			fmt.Sprintf("%.3f", row.BestRatio),
			fmt.Sprintf("%.3f", row.BestRatioExclFirst),
			fmt.Sprintf("%.3f", row.NextRatio),
			fmt.Sprintf("%.3f", row.NextRatioExclFirst),
			row.First,
			row.Second,
			row.Third,
		})
	}
	t.Render()
}

func (r *Report) String() string {
	var sb strings.Builder
	r.Render(&sb)
	return sb.String()
}
