package domain

// Wheel is the fixed-order colour sequence treated as a circle: position 0 is
// adjacent to position len-1. Every operation validates its index arguments
// against [0, len) and reports an absent result for out-of-range probes, so
// the operations can be used inline as filter predicates.
//
// When the two arcs connecting a pair of positions are equally long, the
// non-wrapping arc (the one that does not cross the sequence boundary) is
// chosen. This tie-break is applied uniformly across all four operations.
type Wheel []Colour

func (w Wheel) valid(positions ...int) bool {
	for _, p := range positions {
		if p < 0 || p >= len(w) {
			return false
		}
	}
	return true
}

// arc classifies the shorter arc between two positions. first and last are
// the smaller and larger position; wraps reports whether the shorter arc
// crosses the sequence boundary.
func (w Wheel) arc(one, two int) (first, last int, wraps bool) {
	first, last = one, two
	if first > last {
		first, last = last, first
	}
	d := last - first
	return first, last, d > len(w)-d
}

// RangeLength returns the number of positions on the shorter arc between one
// and two, inclusive of both endpoints. Two coincident positions have length
// 1; the first and last wheel positions have length 2.
func (w Wheel) RangeLength(one, two int) (int, bool) {
	if !w.valid(one, two) {
		return 0, false
	}
	d := one - two
	if d < 0 {
		d = -d
	}
	if rest := len(w) - d; rest < d {
		d = rest
	}
	return 1 + d, true
}

// InRange reports whether target lies on the shorter arc between one and two,
// endpoints included.
func (w Wheel) InRange(one, two, target int) (bool, bool) {
	if !w.valid(one, two, target) {
		return false, false
	}
	first, last, wraps := w.arc(one, two)
	if wraps {
		return target <= first || target >= last, true
	}
	return first <= target && target <= last, true
}

// SubrangeInRange reports whether the shorter arc spanned by (targetOne,
// targetTwo) lies entirely within the shorter arc spanned by (rangeOne,
// rangeTwo). Both arcs are classified independently with the shared
// tie-break rule.
func (w Wheel) SubrangeInRange(rangeOne, rangeTwo, targetOne, targetTwo int) (bool, bool) {
	if !w.valid(rangeOne, rangeTwo, targetOne, targetTwo) {
		return false, false
	}
	outerFirst, outerLast, outerWraps := w.arc(rangeOne, rangeTwo)
	innerFirst, innerLast, innerWraps := w.arc(targetOne, targetTwo)
	switch {
	case outerWraps && innerWraps:
		// Both arcs cross the boundary; containment runs from the outside in.
		return outerFirst >= innerFirst && innerLast >= outerLast, true
	case outerWraps:
		// The inner arc must fit inside one of the two tail segments left by
		// the outer wrap: [outerLast, len) or [0, outerFirst].
		return innerFirst >= outerLast || innerLast <= outerFirst, true
	case innerWraps:
		// A wrapping arc can never sit inside a non-wrapping one.
		return false, true
	default:
		return outerFirst <= innerFirst && innerLast <= outerLast, true
	}
}

// RangeSequence returns every position on the shorter arc between one and
// two in walk order, starting from whichever endpoint begins the arc. A
// wrapping arc walks the high segment up to the boundary first, then
// continues from position 0, so the sequence never jumps.
func (w Wheel) RangeSequence(one, two int) ([]int, bool) {
	if !w.valid(one, two) {
		return nil, false
	}
	first, last, wraps := w.arc(one, two)
	if !wraps {
		seq := make([]int, 0, last-first+1)
		for i := first; i <= last; i++ {
			seq = append(seq, i)
		}
		return seq, true
	}
	seq := make([]int, 0, len(w)-(last-first)+1)
	for i := last; i < len(w); i++ {
		seq = append(seq, i)
	}
	for i := 0; i <= first; i++ {
		seq = append(seq, i)
	}
	return seq, true
}
