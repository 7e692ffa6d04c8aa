package cmds

func Var[T any](name string) *T {
	return DefineVar[T](defaultExecutor, name)
}

func Switch(name string) *bool {
	return defaultExecutor.Switch(name)
}

func DefineVar[T any](p *Executor, name string) *T {
	var value T

	// set
	p.Define(name, Func(func(v T) {
		value = v
	}))

	// set zero
	var zero T
	p.Define(name+".", Func(func() {
		value = zero
	}))

	return &value
}

func (p *Executor) Switch(name string) *bool {
	var value bool

	// set true
	p.Define(name, Func(func() {
		value = true
	}))

	// set false
	p.Define("!"+name, Func(func() {
		value = false
	}))

	return &value
}
