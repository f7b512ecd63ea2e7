package pathfind

// Direction is one of the eight compass directions.
type Direction uint8

const (
	NoDirection Direction = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Clockwise lists all eight directions starting from north. Searches expand
// neighbors in this order.
var Clockwise = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// Cardinal lists the four edge-sharing directions, clockwise from north.
var Cardinal = []Direction{North, East, South, West}

var directionOffsets = [...]Point{
	NoDirection: {0, 0},
	North:       {0, -1},
	NorthEast:   {1, -1},
	East:        {1, 0},
	SouthEast:   {1, 1},
	South:       {0, 1},
	SouthWest:   {-1, 1},
	West:        {-1, 0},
	NorthWest:   {-1, -1},
}

var directionNames = [...]string{
	NoDirection: "none",
	North:       "N",
	NorthEast:   "NE",
	East:        "E",
	SouthEast:   "SE",
	South:       "S",
	SouthWest:   "SW",
	West:        "W",
	NorthWest:   "NW",
}

// Offset returns the unit step for d.
func (d Direction) Offset() Point {
	if int(d) >= len(directionOffsets) {
		return Point{}
	}
	return directionOffsets[d]
}

// IsCardinal reports whether d crosses an edge rather than a corner.
func (d Direction) IsCardinal() bool {
	return d == North || d == East || d == South || d == West
}

// IsDiagonal reports whether d crosses a corner.
func (d Direction) IsDiagonal() bool {
	return d == NorthEast || d == SouthEast || d == SouthWest || d == NorthWest
}

// Opposite returns the direction pointing back along d.
func (d Direction) Opposite() Direction {
	if d == NoDirection {
		return NoDirection
	}
	return Direction((int(d)-1+4)%8 + 1)
}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return "invalid"
	}
	return directionNames[d]
}

// Towards returns the direction of the single step from a to b, or
// NoDirection when b is not adjacent to a.
func Towards(a, b Point) Direction {
	delta := b.Sub(a)
	for _, d := range Clockwise {
		if directionOffsets[d] == delta {
			return d
		}
	}
	return NoDirection
}
