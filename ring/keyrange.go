package ring

// KeyRange is a half-open interval [Start, End) over ring positions.
//
// If Start >= End the range is inverted and covers the union of
// [Start, MaxPosition] and [0, End). A range with Start == End covers the
// whole ring. KeyRange is an immutable value; every (Start, End) pair is
// structurally valid.
type KeyRange struct {
	Start RingPosition
	End   RingPosition
}

// NewKeyRange returns the range [start, end).
func NewKeyRange(start, end RingPosition) KeyRange {
	return KeyRange{Start: start, End: end}
}

// IsInverted reports whether Start >= End.
func (r KeyRange) IsInverted() bool {
	return r.Start >= r.End
}

// EndsAtOrigin reports whether the range ends exactly at position zero.
// Such a range has inverted bounds yet does not wrap.
func (r KeyRange) EndsAtOrigin() bool {
	return r.End == 0
}

// IsWrapping reports whether the range crosses the origin.
func (r KeyRange) IsWrapping() bool {
	return r.IsInverted() && !r.EndsAtOrigin()
}

// CoversWholeRing reports whether the range spans the entire keyspace.
func (r KeyRange) CoversWholeRing() bool {
	return r.Start == r.End
}

// Contains reports whether pos falls within the range.
func (r KeyRange) Contains(pos RingPosition) bool {
	if r.IsInverted() {
		return pos >= r.Start || pos < r.End
	}
	return pos >= r.Start && pos < r.End
}

// IsOverlapping reports whether the two ranges share any position.
func (r KeyRange) IsOverlapping(other KeyRange) bool {
	return r.Contains(other.Start) || other.Contains(r.Start)
}

// IsContinuous reports whether one range begins exactly where the other
// ends, so the two concatenate into a single interval.
func (r KeyRange) IsContinuous(other KeyRange) bool {
	if r.CoversWholeRing() || other.CoversWholeRing() {
		return false
	}
	return r.End == other.Start || other.End == r.Start
}

// Merged returns the union of r and other as a single interval. The second
// return is false when the ranges neither overlap nor touch. A merge that
// involves or produces the whole ring canonicalizes to [0, 0).
func (r KeyRange) Merged(other KeyRange) (KeyRange, bool) {
	if r.CoversWholeRing() || other.CoversWholeRing() {
		return KeyRange{}, true
	}
	if !r.IsOverlapping(other) && !r.IsContinuous(other) {
		return KeyRange{}, false
	}

	var start, end RingPosition
	if r.IsInverted() == other.IsInverted() {
		start = min(r.Start, other.Start)
		end = max(r.End, other.End)
	} else {
		// Let a be the inverted range and b the other one.
		a, b := r, other
		if !a.IsInverted() {
			a, b = b, a
		}
		if a.Start <= b.End {
			// b touches a from the left.
			start = min(a.Start, b.Start)
			end = a.End
		} else {
			// b touches a from the right.
			start = a.Start
			end = max(a.End, b.End)
		}
	}

	if start == end {
		// The union closed over the whole ring.
		return KeyRange{}, true
	}
	return KeyRange{Start: start, End: end}, true
}

// Size returns the number of positions the range covers. Inverted ranges,
// the whole ring included, report MaxPosition rather than the true 2^64
// span; callers depend on these exact values.
func (r KeyRange) Size() RingPosition {
	if r.IsInverted() {
		return MaxPosition - (r.Start - r.End)
	}
	return r.End - r.Start
}
