package level

import "github.com/samdwyer/delvegrid/internal/pathfind"

// Room represents a rectangular room on the level. Its footprint includes
// the surrounding wall ring.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room
}

// Center returns the center of the room.
func (r Room) Center() pathfind.Point {
	return pathfind.Pt(r.X+r.Width/2, r.Y+r.Height/2)
}

// Right returns one past the last column.
func (r Room) Right() int { return r.X + r.Width }

// Bottom returns one past the last row.
func (r Room) Bottom() int { return r.Y + r.Height }

// Area returns the number of tiles covered.
func (r Room) Area() int { return r.Width * r.Height }

// Empty reports whether the room covers no tiles.
func (r Room) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains returns true if the given point is inside the room.
func (r Room) Contains(p pathfind.Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsRoom returns true if other lies entirely inside r.
func (r Room) ContainsRoom(other Room) bool {
	return other.X >= r.X && other.Y >= r.Y && other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Intersects returns true if this room overlaps with another room.
func (r Room) Intersects(other Room) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Inflate grows the room by n on every side. Negative n shrinks it.
func (r Room) Inflate(n int) Room {
	return Room{X: r.X - n, Y: r.Y - n, Width: r.Width + 2*n, Height: r.Height + 2*n}
}

// Points returns every covered tile in row-major order.
func (r Room) Points() []pathfind.Point {
	if r.Empty() {
		return nil
	}
	out := make([]pathfind.Point, 0, r.Area())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			out = append(out, pathfind.Pt(x, y))
		}
	}
	return out
}

// Interior returns the tiles inside the wall ring.
func (r Room) Interior() []pathfind.Point {
	return r.Inflate(-1).Points()
}

// Trace returns the outermost ring of tiles, clockwise from the top-left
// corner. Each tile appears once.
func (r Room) Trace() []pathfind.Point {
	if r.Empty() {
		return nil
	}
	if r.Width == 1 || r.Height == 1 {
		return r.Points()
	}
	out := make([]pathfind.Point, 0, 2*(r.Width+r.Height)-4)
	for x := r.X; x < r.Right(); x++ {
		out = append(out, pathfind.Pt(x, r.Y))
	}
	for y := r.Y + 1; y < r.Bottom(); y++ {
		out = append(out, pathfind.Pt(r.Right()-1, y))
	}
	for x := r.Right() - 2; x >= r.X; x-- {
		out = append(out, pathfind.Pt(x, r.Bottom()-1))
	}
	for y := r.Bottom() - 2; y > r.Y; y-- {
		out = append(out, pathfind.Pt(r.X, y))
	}
	return out
}
