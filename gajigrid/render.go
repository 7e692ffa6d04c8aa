package gajigrid

import (
	"io"
	"strings"
)

func (g *Grid) String() string {
	var b strings.Builder
	for row := range g.rows {
		for col := range g.cols {
			b.WriteRune(g.At(row, col).Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.String())
	return int64(n), err
}
