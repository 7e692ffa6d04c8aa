package cmds

import (
	"fmt"
)

var defaultExecutor = NewExecutor()

func Define(name string, command *Command) {
	defaultExecutor.Define(name, command)
}

// Execute runs args against the process-wide commands, exiting on error.
func Execute(args []string) {
	if err := defaultExecutor.Execute(args); err != nil {
		fmt.Fprintln(defaultExecutor.Output, err)
		defaultExecutor.PrintUsage()
		defaultExecutor.Exit(-1)
	}
}
