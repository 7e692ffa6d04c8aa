package gajivm

import (
	"context"
	"io"
	"log/slog"

	"github.com/reusee/gaji/gajigrid"
	"github.com/reusee/gaji/logs"
)

type VM struct {
	Grid *gajigrid.Grid
	Row  int
	Col  int
	Dir  Direction

	// one-shot, each cancels the next eligible action of its kind
	SkipPlant   bool
	SkipHarvest bool
	SkipExecute bool

	Steps   int
	Logger  logs.Logger
	Context context.Context

	input  bitReader
	output bitWriter
}

func NewVM(grid *gajigrid.Grid, input io.Reader, output io.Writer) *VM {
	return &VM{
		Grid:    grid,
		Dir:     Right,
		Logger:  slog.New(slog.DiscardHandler),
		Context: context.Background(),
		input: bitReader{
			r: input,
		},
		output: bitWriter{
			w: output,
		},
	}
}

func (v *VM) Halted() bool {
	return !v.Grid.Contains(v.Row, v.Col)
}

func (v *VM) BytesWritten() int {
	return v.output.written
}

// PendingBits is the number of output bits not yet forming a whole byte.
func (v *VM) PendingBits() int {
	return v.output.n
}

func (v *VM) InputExhausted() bool {
	return v.input.eof
}

func (v *VM) Execute(cmd Command) error {
	switch cmd {

	case CommandOutput:
		row := v.Row + v.Dir.Row
		col := v.Col + v.Dir.Col
		if !v.Grid.Contains(row, col) {
			return nil
		}
		return v.output.WriteBit(v.Grid.Value(row, col))

	case CommandTurnLeft:
		v.Dir = v.Dir.TurnLeft()

	case CommandTurnRight:
		v.Dir = v.Dir.TurnRight()

	case CommandSkipPlant:
		v.SkipPlant = true

	case CommandSkipHarvest:
		v.SkipHarvest = true

	case CommandSkipExecute:
		v.SkipExecute = true

	case CommandInput:
		bit, ok, err := v.input.ReadBit()
		if err != nil {
			return err
		}
		if ok && bit == 1 {
			v.Grid.Set(v.Row, v.Col, gajigrid.Planted)
		}

	}
	return nil
}
