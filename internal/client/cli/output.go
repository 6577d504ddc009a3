package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// renderTable prints rows under a header using box-drawing characters on
// a terminal and a plain ASCII style when output is piped.
func (a *App) renderTable(header table.Row, rows []table.Row, configs ...table.ColumnConfig) {
	t := table.NewWriter()
	t.SetOutputMirror(a.out)
	if f, ok := a.out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		t.SetStyle(table.StyleRounded)
	} else {
		t.SetStyle(table.StyleDefault)
	}
	t.AppendHeader(header)
	t.AppendRows(rows)
	if len(configs) > 0 {
		t.SetColumnConfigs(configs)
	}
	t.Render()
}

func rightAligned(cols ...int) []table.ColumnConfig {
	configs := make([]table.ColumnConfig, 0, len(cols))
	for _, c := range cols {
		configs = append(configs, table.ColumnConfig{Number: c, Align: text.AlignRight})
	}
	return configs
}

// progressBar renders a fixed-width bar like [######----] 60%.
func progressBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	return fmt.Sprintf("[%s%s] %d%%",
		strings.Repeat("#", filled),
		strings.Repeat("-", width-filled),
		int(fraction*100))
}

func (a *App) printTitle(s string) {
	fmt.Fprintf(a.out, "\n== %s ==\n", s)
}
