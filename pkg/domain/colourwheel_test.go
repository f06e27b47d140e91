package domain

import (
	"testing"
)

func testWheel(t *testing.T) Wheel {
	t.Helper()
	return Wheel(testDataset().Colours)
}

func TestRangeLength(t *testing.T) {
	w := testWheel(t)
	n := len(w)
	for i := 0; i < n; i++ {
		got, ok := w.RangeLength(i, i)
		if !ok || got != 1 {
			t.Fatalf("RangeLength(%d,%d) = %d, %v; want 1", i, i, got, ok)
		}
	}
	// The ends of the sequence are adjacent on the circle.
	got, ok := w.RangeLength(0, n-1)
	if !ok || got != 2 {
		t.Fatalf("RangeLength(0,%d) = %d, %v; want 2", n-1, got, ok)
	}
	got, ok = w.RangeLength(1, 5)
	if !ok || got != 5 {
		t.Fatalf("RangeLength(1,5) = %d, %v; want 5", got, ok)
	}
	// Arguments commute.
	a, _ := w.RangeLength(2, 6)
	b, _ := w.RangeLength(6, 2)
	if a != b {
		t.Fatalf("RangeLength not symmetric: %d vs %d", a, b)
	}
}

func TestRangeLengthInvalid(t *testing.T) {
	w := testWheel(t)
	if _, ok := w.RangeLength(-1, 0); ok {
		t.Error("negative index should be absent")
	}
	if _, ok := w.RangeLength(0, len(w)); ok {
		t.Error("index past end should be absent")
	}
}

func TestInRangeEndpoints(t *testing.T) {
	w := testWheel(t)
	n := len(w)
	pairs := [][2]int{{0, 3}, {3, 0}, {0, n - 1}, {n - 1, 2}, {5, 5}, {6, 1}}
	for _, p := range pairs {
		for _, end := range p {
			in, ok := w.InRange(p[0], p[1], end)
			if !ok || !in {
				t.Errorf("InRange(%d,%d,%d) = %v, %v; endpoints are always included", p[0], p[1], end, in, ok)
			}
		}
	}
}

func TestInRangeWrapping(t *testing.T) {
	w := testWheel(t)
	// The shorter arc between 6 and 1 crosses the boundary: {6, 7, 0, 1}.
	for _, target := range []int{6, 7, 0, 1} {
		in, ok := w.InRange(6, 1, target)
		if !ok || !in {
			t.Errorf("InRange(6,1,%d) = %v, %v; want true", target, in, ok)
		}
	}
	for _, target := range []int{2, 3, 4, 5} {
		in, ok := w.InRange(6, 1, target)
		if !ok || in {
			t.Errorf("InRange(6,1,%d) = %v, %v; want false", target, in, ok)
		}
	}
}

// When both arcs are four positions long the non-wrapping one must win the
// tie, matching the reference behaviour of comparing d <= N-d.
func TestInRangeEqualArcTieBreak(t *testing.T) {
	w := testWheel(t)
	in, ok := w.InRange(1, 5, 3)
	if !ok || !in {
		t.Fatalf("InRange(1,5,3) = %v, %v; want non-wrapping arc", in, ok)
	}
	in, ok = w.InRange(1, 5, 7)
	if !ok || in {
		t.Fatalf("InRange(1,5,7) = %v, %v; tie must choose the non-wrapping arc", in, ok)
	}
}

func TestInRangeInvalid(t *testing.T) {
	w := testWheel(t)
	if _, ok := w.InRange(0, 1, len(w)); ok {
		t.Error("out-of-range target should be absent")
	}
	if _, ok := w.InRange(-1, 1, 0); ok {
		t.Error("out-of-range endpoint should be absent")
	}
}

func TestSubrangeReflexive(t *testing.T) {
	w := testWheel(t)
	n := len(w)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			in, ok := w.SubrangeInRange(a, b, a, b)
			if !ok || !in {
				t.Fatalf("SubrangeInRange(%d,%d,%d,%d) = %v, %v; a range contains itself", a, b, a, b, in, ok)
			}
		}
	}
}

func TestSubrangeCases(t *testing.T) {
	w := testWheel(t)
	cases := []struct {
		name           string
		o1, o2, i1, i2 int
		want           bool
	}{
		{"neither wraps, contained", 1, 5, 2, 4, true},
		{"neither wraps, overhang", 1, 5, 2, 6, false},
		{"both wrap, contained", 6, 1, 7, 0, true},
		{"both wrap, inner overhang", 7, 0, 6, 1, false},
		{"outer wraps, inner in high tail", 6, 1, 6, 7, true},
		{"outer wraps, inner in low tail", 6, 1, 0, 1, true},
		{"outer wraps, inner straddles gap", 6, 1, 1, 2, false},
		{"outer non-wrapping, inner wraps", 2, 5, 7, 0, false},
		{"wrap boundary endpoints", 0, 7, 7, 0, true},
	}
	for _, tc := range cases {
		got, ok := w.SubrangeInRange(tc.o1, tc.o2, tc.i1, tc.i2)
		if !ok {
			t.Errorf("%s: absent result", tc.name)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: SubrangeInRange(%d,%d,%d,%d) = %v, want %v", tc.name, tc.o1, tc.o2, tc.i1, tc.i2, got, tc.want)
		}
	}
}

// A wheel-wide check that no wrapping inner arc ever reports containment in a
// non-wrapping outer arc.
func TestSubrangeWrapNeverInsideNonWrap(t *testing.T) {
	w := testWheel(t)
	n := len(w)
	for o1 := 0; o1 < n; o1++ {
		for o2 := o1; o2 < n; o2++ {
			if _, _, wraps := w.arc(o1, o2); wraps {
				continue
			}
			for i1 := 0; i1 < n; i1++ {
				for i2 := 0; i2 < n; i2++ {
					if _, _, wraps := w.arc(i1, i2); !wraps {
						continue
					}
					in, ok := w.SubrangeInRange(o1, o2, i1, i2)
					if !ok || in {
						t.Fatalf("wrapping (%d,%d) reported inside non-wrapping (%d,%d)", i1, i2, o1, o2)
					}
				}
			}
		}
	}
}

func TestSubrangeInvalid(t *testing.T) {
	w := testWheel(t)
	if _, ok := w.SubrangeInRange(0, 1, 2, len(w)); ok {
		t.Error("out-of-range inner endpoint should be absent")
	}
}

func TestRangeSequence(t *testing.T) {
	w := testWheel(t)
	cases := []struct {
		one, two int
		want     []int
	}{
		{2, 5, []int{2, 3, 4, 5}},
		{5, 2, []int{2, 3, 4, 5}},
		{4, 4, []int{4}},
		{6, 1, []int{6, 7, 0, 1}},
		{1, 6, []int{6, 7, 0, 1}},
		{0, 7, []int{7, 0}},
	}
	for _, tc := range cases {
		got, ok := w.RangeSequence(tc.one, tc.two)
		if !ok {
			t.Errorf("RangeSequence(%d,%d) absent", tc.one, tc.two)
			continue
		}
		if len(got) != len(tc.want) {
			t.Errorf("RangeSequence(%d,%d) = %v, want %v", tc.one, tc.two, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("RangeSequence(%d,%d) = %v, want %v", tc.one, tc.two, got, tc.want)
				break
			}
		}
	}
}

func TestRangeSequenceMatchesRangeLength(t *testing.T) {
	w := testWheel(t)
	n := len(w)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			seq, ok := w.RangeSequence(a, b)
			if !ok {
				t.Fatalf("RangeSequence(%d,%d) absent", a, b)
			}
			length, ok := w.RangeLength(a, b)
			if !ok {
				t.Fatalf("RangeLength(%d,%d) absent", a, b)
			}
			if len(seq) != length {
				t.Fatalf("sequence length %d disagrees with RangeLength %d for (%d,%d)", len(seq), length, a, b)
			}
			// Every emitted position must be a member of the arc.
			for _, p := range seq {
				in, ok := w.InRange(a, b, p)
				if !ok || !in {
					t.Fatalf("RangeSequence(%d,%d) emitted %d outside the arc", a, b, p)
				}
			}
		}
	}
}

func TestRangeSequenceInvalid(t *testing.T) {
	w := testWheel(t)
	if _, ok := w.RangeSequence(0, len(w)); ok {
		t.Error("out-of-range endpoint should be absent")
	}
}
