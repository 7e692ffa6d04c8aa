package gajivm

import "github.com/reusee/gaji/gajigrid"

// row offset outer, column offset inner, center skipped
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Decode sums the Moore neighborhood of (row, col) with weights 1, 2, 4 repeating.
// Neighbors outside the grid count as zero but still consume a weight.
func Decode(grid *gajigrid.Grid, row, col int) Command {
	weight := 1
	sum := 0
	for _, offset := range neighborOffsets {
		sum = (sum + weight*grid.Value(row+offset[0], col+offset[1])) % int(numCommands)
		weight = weight * 2 % int(numCommands)
	}
	return Command(sum)
}
