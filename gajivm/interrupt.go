package gajivm

type Interrupt struct {
	Step bool
	Halt bool
}

var (
	InterruptStep = &Interrupt{
		Step: true,
	}
	InterruptHalt = &Interrupt{
		Halt: true,
	}
)
