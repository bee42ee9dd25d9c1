package ring

import (
	"iter"
	"sort"
)

// search returns the index of the first token at or after pos.
func search[N comparable](tokens []RingToken[N], pos RingPosition) int {
	return sort.Search(len(tokens), func(i int) bool {
		return tokens[i].Position >= pos
	})
}

// tokensFrom returns a lazy traversal over a fixed snapshot of ring entries
// starting at start. Clockwise yields entries at or after start in ascending
// order, then wraps to the entries before it; counter-clockwise yields
// entries at or before start in descending order, then wraps to the entries
// after it. Either way every entry appears exactly once, and a traversal
// from an occupied position begins at that entry. The sequence restarts on
// every range.
func tokensFrom[N comparable](tokens []RingToken[N], start RingPosition, dir Direction) iter.Seq[RingToken[N]] {
	split := search(tokens, start)

	if dir == CounterClockwise {
		// Entries at indices below hi are <= start; positions are unique,
		// so at most one equals start.
		hi := split
		if hi < len(tokens) && tokens[hi].Position == start {
			hi++
		}
		return func(yield func(RingToken[N]) bool) {
			for i := hi - 1; i >= 0; i-- {
				if !yield(tokens[i]) {
					return
				}
			}
			for i := len(tokens) - 1; i >= hi; i-- {
				if !yield(tokens[i]) {
					return
				}
			}
		}
	}

	return func(yield func(RingToken[N]) bool) {
		for _, t := range tokens[split:] {
			if !yield(t) {
				return
			}
		}
		for _, t := range tokens[:split] {
			if !yield(t) {
				return
			}
		}
	}
}

// predecessor returns the entry a clockwise traversal from pos yields last:
// the nearest entry circularly before pos. On a ring whose only positions
// are at or after pos this wraps to the largest position, which for a single
// entry stored exactly at pos is that entry itself. Reports false only on an
// empty snapshot.
func predecessor[N comparable](tokens []RingToken[N], pos RingPosition) (RingToken[N], bool) {
	if len(tokens) == 0 {
		return RingToken[N]{}, false
	}
	if idx := search(tokens, pos); idx > 0 {
		return tokens[idx-1], true
	}
	return tokens[len(tokens)-1], true
}
