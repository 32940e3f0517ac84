// Package renderer formats reports as markdown for terminal display.
package renderer

import (
	"fmt"
	"strings"
)

// table accumulates a markdown table row by row.
type table struct {
	b *strings.Builder
}

func newTable(b *strings.Builder, headers ...string) *table {
	t := &table{b: b}
	t.row(headers...)
	separators := make([]string, len(headers))
	for i := range separators {
		separators[i] = ":---"
	}
	t.row(separators...)
	return t
}

func (t *table) row(cells ...string) {
	fmt.Fprintf(t.b, "| %s |\n", strings.Join(cells, " | "))
}
