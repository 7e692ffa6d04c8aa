package gajivm

type Command uint8

const (
	CommandOutput Command = iota
	CommandTurnLeft
	CommandTurnRight
	CommandSkipPlant
	CommandSkipHarvest
	CommandSkipExecute
	CommandInput

	numCommands
)

var commandNames = [numCommands]string{
	CommandOutput:      "output",
	CommandTurnLeft:    "turn-left",
	CommandTurnRight:   "turn-right",
	CommandSkipPlant:   "skip-plant",
	CommandSkipHarvest: "skip-harvest",
	CommandSkipExecute: "skip-execute",
	CommandInput:       "input",
}

func (c Command) String() string {
	if c >= numCommands {
		return "invalid"
	}
	return commandNames[c]
}
