package gajigrid

type Cell uint8

const (
	Inert Cell = iota
	Open
	Planted
)

const (
	PlantedMarker = '🍆'
	OpenMarker    = '🌱'
	InertGlyph    = '❓'
)

func CellOf(r rune) Cell {
	switch r {
	case PlantedMarker:
		return Planted
	case OpenMarker:
		return Open
	}
	return Inert
}

func IsMarker(r rune) bool {
	return r == PlantedMarker || r == OpenMarker
}

// Value is the weight a cell contributes to neighbor sums and output bits.
func (c Cell) Value() int {
	if c == Planted {
		return 1
	}
	return 0
}

func (c Cell) Glyph() rune {
	switch c {
	case Planted:
		return PlantedMarker
	case Open:
		return OpenMarker
	}
	return InertGlyph
}

func (c Cell) String() string {
	switch c {
	case Planted:
		return "planted"
	case Open:
		return "open"
	}
	return "inert"
}
