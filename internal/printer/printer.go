// Package printer writes a matrix as a boxed text table for non-interactive
// use, such as piping greg's output to another program.
package printer

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/dshills/greg/internal/matrix"
)

// Options configures Print.
type Options struct {
	// HeaderRows is the number of leading rows printed as headers.
	HeaderRows int
	// ColumnWidthMax truncates cells wider than this. Zero means no limit.
	ColumnWidthMax int
	// RowNumbers adds a leading column numbering the data rows.
	RowNumbers bool
}

// Print renders m to w. m must be a 2-D matrix.
func Print(w io.Writer, m *matrix.Matrix[string], opts Options) error {
	tw, err := Table(m, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, tw.Render()+"\n")
	return err
}

// Table builds the table writer for m without rendering it.
func Table(m *matrix.Matrix[string], opts Options) (table.Writer, error) {
	if m.Rank() != 2 {
		return nil, fmt.Errorf("printing %v: %w", m.Dimensions(), matrix.ErrRankMismatch)
	}
	rows, cols := m.Dimension(0), m.Dimension(1)

	tw := table.NewWriter()
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	tw.SetStyle(style)

	for r := 0; r < rows; r++ {
		row := make(table.Row, 0, cols+1)
		if opts.RowNumbers {
			if r < opts.HeaderRows {
				row = append(row, "")
			} else {
				row = append(row, r-opts.HeaderRows)
			}
		}
		for c := 0; c < cols; c++ {
			v, _ := m.Get(r, c)
			row = append(row, v)
		}
		if r < opts.HeaderRows {
			tw.AppendHeader(row)
		} else {
			tw.AppendRow(row)
		}
	}

	if opts.ColumnWidthMax > 0 {
		configs := make([]table.ColumnConfig, 0, cols+1)
		for n := 1; n <= cols+1; n++ {
			configs = append(configs, table.ColumnConfig{
				Number:           n,
				WidthMax:         opts.ColumnWidthMax,
				WidthMaxEnforcer: text.Trim,
			})
		}
		tw.SetColumnConfigs(configs)
	}

	return tw, nil
}
