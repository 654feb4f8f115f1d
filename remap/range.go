package remap

import "fmt"

// rangeKind discriminates the structural forms a Range can take.
type rangeKind uint8

const (
	rangeInvalid rangeKind = iota
	rangeSingle
	rangePair
	rangeLastFrame
)

// Range designates one or more frame positions within a reference clip.
// Construct values with Frame, Between, From, Until, Whole, or LastFrame;
// the zero Range is structurally invalid and rejected by NormalizeRanges
// with clip.ErrBadRange.
//
// Bounds are inclusive. An open bound extends to the clip's first or
// last frame. A negative bound counts back from the end: -1 designates
// the second-to-last frame (length - 1 + bound).
type Range struct {
	kind     rangeKind
	start    int
	end      int
	openLow  bool
	openHigh bool
}

// Frame designates the single frame at index n. Negative n wraps from
// the clip's end.
func Frame(n int) Range {
	return Range{kind: rangeSingle, start: n, end: n}
}

// Between designates the inclusive span from start to end.
func Between(start, end int) Range {
	return Range{kind: rangePair, start: start, end: end}
}

// From designates the inclusive span from start to the clip's last frame.
func From(start int) Range {
	return Range{kind: rangePair, start: start, openHigh: true}
}

// Until designates the inclusive span from the clip's first frame to end.
func Until(end int) Range {
	return Range{kind: rangePair, end: end, openLow: true}
}

// Whole designates the entire clip.
func Whole() Range {
	return Range{kind: rangePair, openLow: true, openHigh: true}
}

// LastFrame designates the clip's final frame only.
func LastFrame() Range {
	return Range{kind: rangeLastFrame}
}

// String renders the range for error messages and logs.
func (r Range) String() string {
	switch r.kind {
	case rangeSingle:
		return fmt.Sprintf("[%d]", r.start)
	case rangePair:
		low, high := "None", "None"
		if !r.openLow {
			low = fmt.Sprintf("%d", r.start)
		}
		if !r.openHigh {
			high = fmt.Sprintf("%d", r.end)
		}
		return fmt.Sprintf("(%s, %s)", low, high)
	case rangeLastFrame:
		return "(last frame)"
	default:
		return "(invalid)"
	}
}

// Span is a normalized range: a concrete inclusive index pair relative
// to a reference clip. Well-formed input yields 0 <= Start <= End <
// length, but normalization does not enforce this; see NormalizeRanges.
type Span struct {
	Start int
	End   int
}

// Count returns the number of frames the span covers, zero when the
// bounds are reversed (the defined degenerate case).
func (s Span) Count() int {
	if s.Start > s.End {
		return 0
	}
	return s.End - s.Start + 1
}
