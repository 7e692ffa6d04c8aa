package gajigrid

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var ErrOutOfBounds = errors.New("grid out of bounds")

func Build(source string) (*Grid, error) {
	lines := splitLines(source)

	cols := 0
	for _, line := range lines {
		cols = max(cols, markedWidth(line))
	}

	grid := New(len(lines), cols)
	for row, line := range lines {
		col := 0
		for _, r := range line {
			if !grid.Contains(row, col) {
				return nil, fmt.Errorf(
					"%w: line %d column %d exceeds grid width %d",
					ErrOutOfBounds, row+1, col+1, cols,
				)
			}
			if IsMarker(r) {
				grid.Set(row, col, CellOf(r))
			}
			col++
		}
	}

	return grid, nil
}

// markedWidth is the rune count of line up to and including its last marker.
func markedWidth(line string) int {
	n := utf8.RuneCountInString(line)
	for i := len(line); i > 0; {
		r, size := utf8.DecodeLastRuneInString(line[:i])
		if IsMarker(r) {
			return n
		}
		i -= size
		n--
	}
	return 0
}

func splitLines(source string) []string {
	if source == "" {
		return nil
	}
	source = strings.TrimSuffix(source, "\n")
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
