package gajivm

import (
	"github.com/reusee/gaji/gajigrid"
)

func (v *VM) Step() error {
	switch v.Grid.At(v.Row, v.Col) {

	case gajigrid.Open:
		if v.SkipPlant {
			v.SkipPlant = false
			break
		}
		v.Grid.Set(v.Row, v.Col, gajigrid.Planted)

	case gajigrid.Planted:
		if v.SkipHarvest {
			v.SkipHarvest = false
			break
		}
		v.Grid.Set(v.Row, v.Col, gajigrid.Open)
		if v.SkipExecute {
			v.SkipExecute = false
			break
		}
		cmd := Decode(v.Grid, v.Row, v.Col)
		v.Logger.DebugContext(v.Context, "execute",
			"row", v.Row,
			"col", v.Col,
			"command", cmd,
		)
		if err := v.Execute(cmd); err != nil {
			return err
		}

	}

	v.Row += v.Dir.Row
	v.Col += v.Dir.Col
	v.Steps++
	return nil
}

// Run steps until the head leaves the grid. It yields InterruptStep after every step and
// InterruptHalt once the output is flushed. A stream error is yielded and ends the run
// without flushing.
func (v *VM) Run(yield func(*Interrupt, error) bool) {
	for !v.Halted() {
		if err := v.Step(); err != nil {
			yield(nil, err)
			return
		}
		if !yield(InterruptStep, nil) {
			if err := v.flush(); err != nil {
				v.Logger.ErrorContext(v.Context, "flush output", "error", err)
			}
			return
		}
	}
	if err := v.flush(); err != nil {
		yield(nil, err)
		return
	}
	yield(InterruptHalt, nil)
}

func (v *VM) flush() error {
	discarded := v.output.n
	if err := v.output.Flush(); err != nil {
		return err
	}
	v.Logger.InfoContext(v.Context, "halted",
		"steps", v.Steps,
		"bytes", v.output.written,
		"discarded_bits", discarded,
	)
	return nil
}

func (v *VM) Exec() error {
	for _, err := range v.Run {
		if err != nil {
			return err
		}
	}
	return nil
}
