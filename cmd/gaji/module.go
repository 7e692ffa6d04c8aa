package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/gaji/gajivm"
)

type Module struct {
	dscope.Module
	VM gajivm.Module
}
