package ring

import "cmp"

// RingToken is one stored ring entry: a position paired with the node that
// occupies it. Tokens order by position alone.
type RingToken[N comparable] struct {
	Position RingPosition
	Node     N
}

// Compare orders tokens by position.
func (t RingToken[N]) Compare(other RingToken[N]) int {
	return cmp.Compare(t.Position, other.Position)
}

// Less reports whether t sits before other on the ring.
func (t RingToken[N]) Less(other RingToken[N]) bool {
	return t.Position < other.Position
}

// Direction selects which way around the ring a traversal moves.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

func (d Direction) String() string {
	if d == CounterClockwise {
		return "counter-clockwise"
	}
	return "clockwise"
}
