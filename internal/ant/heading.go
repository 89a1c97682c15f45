// Package ant implements Langton's ant on a fixed two-color grid.
// This package is UI-agnostic and deterministic: the same Config always
// produces the same walk, the same final grid and the same dark-cell count.
package ant

// Heading is the direction the ant is facing.
// The cyclic order is Left -> Up -> Right -> Down -> Left.
type Heading uint8

const (
	Left Heading = iota
	Up
	Right
	Down
)

// String returns the string representation of a heading.
func (h Heading) String() string {
	switch h {
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	default:
		return "Unknown"
	}
}

// Clockwise returns the next heading in the cycle (a right turn).
func (h Heading) Clockwise() Heading {
	switch h {
	case Left:
		return Up
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	default:
		return h
	}
}

// CounterClockwise returns the previous heading in the cycle (a left turn).
func (h Heading) CounterClockwise() Heading {
	switch h {
	case Left:
		return Down
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	default:
		return h
	}
}

// Opposite returns the reverse heading.
func (h Heading) Opposite() Heading {
	return h.Clockwise().Clockwise()
}

// Delta returns the (dRow, dCol) offset of one step in this heading.
// Up increases the row, Down decreases it.
func (h Heading) Delta() (dRow, dCol int) {
	switch h {
	case Left:
		return 0, -1
	case Up:
		return 1, 0
	case Right:
		return 0, 1
	case Down:
		return -1, 0
	default:
		return 0, 0
	}
}
