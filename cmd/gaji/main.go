package main

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/gaji/cmds"
	"github.com/reusee/gaji/configs"
	"github.com/reusee/gaji/gajiconfigs"
	"github.com/reusee/gaji/logs"
	"github.com/reusee/gaji/modes"
	"github.com/reusee/gaji/vars"
)

var (
	fileFlag = cmds.Var[string]("-file")
	echoFlag = cmds.Switch("-echo")
	maxSteps = cmds.Var[int]("-max-steps")
)

func main() {
	config, err := gajiconfigs.Load(
		configs.NewLoader(gajiconfigs.Paths(), gajiconfigs.Schema),
	)
	if err != nil {
		fatal(err)
	}
	if config.LogLevel != "" {
		if err := logs.SetLevel(config.LogLevel); err != nil {
			fatal(err)
		}
	}

	args := os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		*fileFlag = args[0]
		args = args[1:]
	}
	cmds.Execute(args)

	opts := options{
		Path:     *fileFlag,
		Echo:     *echoFlag || config.Echo,
		MaxSteps: vars.FirstNonZero(*maxSteps, config.MaxSteps),
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	scope.Call(func(
		run Run,
	) {
		if err := run(
			context.Background(),
			opts,
			bufio.NewReader(os.Stdin),
			os.Stdout,
			os.Stderr,
		); err != nil {
			fatal(err)
		}
	})
}

func fatal(err error) {
	os.Stderr.WriteString(err.Error())
	os.Stderr.WriteString("\n")
	os.Exit(-1)
}
