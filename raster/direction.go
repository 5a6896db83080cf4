// SPDX-License-Identifier: MIT

package raster

import "fmt"

// Position is an integer pixel coordinate: X is the column, Y the row.
type Position struct {
	X, Y int
}

// Add returns p shifted by q.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Less orders positions row-major.
func (p Position) Less(q Position) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// NumberOfNeighbors is the size of the 8-neighbourhood.
const NumberOfNeighbors = 8

// Direction indexes the 8-neighbourhood clockwise, starting at north.
// Even directions are orthogonal, odd ones diagonal.
type Direction int

// The eight neighbour directions.
const (
	N Direction = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

// neighborOffsets is the fixed table behind Offset; same order as Conn8.
var neighborOffsets = [NumberOfNeighbors]Position{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

var directionNames = [NumberOfNeighbors]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Offset returns the coordinate step of d.
func (d Direction) Offset() Position {
	return neighborOffsets[d.norm()]
}

// IsDiagonal reports whether d is a diagonal step.
func (d Direction) IsDiagonal() bool {
	return d.norm()%2 == 1
}

// Opposite returns the direction pointing back: (d+4) mod 8.
func (d Direction) Opposite() Direction {
	return (d + 4).norm()
}

// Cw returns the next direction clockwise.
func (d Direction) Cw() Direction {
	return (d + 1).norm()
}

// Ccw returns the next direction counterclockwise.
func (d Direction) Ccw() Direction {
	return (d + NumberOfNeighbors - 1).norm()
}

// Rotate returns d advanced by k clockwise steps (k may be negative).
func (d Direction) Rotate(k int) Direction {
	return (d + Direction(k)).norm()
}

func (d Direction) String() string {
	return directionNames[d.norm()]
}

func (d Direction) norm() Direction {
	return ((d % NumberOfNeighbors) + NumberOfNeighbors) % NumberOfNeighbors
}

// DirectionOf returns the direction whose offset is (dx, dy), or false if the
// step is not a unit neighbour step.
func DirectionOf(dx, dy int) (Direction, bool) {
	for d, off := range neighborOffsets {
		if off.X == dx && off.Y == dy {
			return Direction(d), true
		}
	}
	return 0, false
}
