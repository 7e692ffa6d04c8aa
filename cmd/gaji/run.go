package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/reusee/gaji/gajigrid"
	"github.com/reusee/gaji/gajivm"
	"github.com/reusee/gaji/logs"
)

type options struct {
	Path     string
	Echo     bool
	MaxSteps int
}

type Run func(ctx context.Context, opts options, stdin *bufio.Reader, stdout io.Writer, stderr io.Writer) error

func (Module) Run(
	logger logs.Logger,
	newSpan logs.NewSpan,
	buildVM gajivm.BuildVM,
) Run {
	return func(ctx context.Context, opts options, stdin *bufio.Reader, stdout io.Writer, stderr io.Writer) (err error) {
		ctx, _ = newSpan(ctx)
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		source, err := readSource(opts.Path, stdin)
		if err != nil {
			return err
		}

		grid, err := gajigrid.Build(source)
		if err != nil {
			return err
		}
		logger.DebugContext(ctx, "grid built",
			"rows", grid.Rows(),
			"cols", grid.Cols(),
		)

		if opts.Echo {
			if _, err := fmt.Fprintf(stderr, "code:\n%s\n", grid); err != nil {
				return err
			}
		}

		output := bufio.NewWriter(stdout)
		vm := buildVM(ctx, grid, stdin, output)
		for _, err := range vm.Run {
			if err != nil {
				return err
			}
			if opts.MaxSteps > 0 && vm.Steps >= opts.MaxSteps && !vm.Halted() {
				return fmt.Errorf("step budget %d exhausted", opts.MaxSteps)
			}
		}
		return nil
	}
}
