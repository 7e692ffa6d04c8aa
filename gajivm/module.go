package gajivm

import (
	"context"
	"io"

	"github.com/reusee/dscope"
	"github.com/reusee/gaji/gajigrid"
	"github.com/reusee/gaji/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

type BuildVM func(ctx context.Context, grid *gajigrid.Grid, input io.Reader, output io.Writer) *VM

func (Module) BuildVM(
	logger logs.Logger,
) BuildVM {
	return func(ctx context.Context, grid *gajigrid.Grid, input io.Reader, output io.Writer) *VM {
		vm := NewVM(grid, input, output)
		vm.Logger = logger
		vm.Context = ctx
		return vm
	}
}
