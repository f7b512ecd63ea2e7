package pathfind

import "fmt"

// Point is an integer grid coordinate. Y grows southward.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p offset by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p minus q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Step returns the point one step from p in direction d.
func (p Point) Step(d Direction) Point { return p.Add(d.Offset()) }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Less orders points row-major, top to bottom.
func (p Point) Less(q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
