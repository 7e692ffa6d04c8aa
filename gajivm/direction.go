package gajivm

type Direction struct {
	Row int
	Col int
}

var (
	Right = Direction{Row: 0, Col: 1}
	Up    = Direction{Row: -1, Col: 0}
	Left  = Direction{Row: 0, Col: -1}
	Down  = Direction{Row: 1, Col: 0}
)

func (d Direction) TurnLeft() Direction {
	return Direction{
		Row: -d.Col,
		Col: d.Row,
	}
}

func (d Direction) TurnRight() Direction {
	return Direction{
		Row: d.Col,
		Col: -d.Row,
	}
}
