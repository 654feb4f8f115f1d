package remap

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/framesplice/clip"
)

// ReplaceRanges splices replacement into base: inside each range the
// output takes replacement's frames, elsewhere it keeps base's. Ranges
// are normalized against the REPLACEMENT clip's length, since they
// describe positions within the content being spliced in.
//
// A nil ranges slice is the identity: base is returned as-is and no
// clip is materialized or even inspected. An empty non-nil slice is
// not the identity; it materializes a lazy re-selection of base.
//
// Ranges apply sequentially, in the order given: each range operates on
// the index mapping as already mutated by the ranges before it, so
// overlapping or out-of-order ranges interact rather than compose
// independently. See applySpan for the exact rule. A normalized bound
// outside the replacement clip returns clip.ErrIndexOutOfRange.
func ReplaceRanges(mat clip.Materializer, base, replacement clip.Clip, ranges []Range) (clip.Clip, error) {
	if ranges == nil {
		return base, nil
	}

	logrus.WithFields(logrus.Fields{
		"function":        "ReplaceRanges",
		"base_length":     base.Length(),
		"replacement_len": replacement.Length(),
		"range_count":     len(ranges),
	}).Debug("Splicing replacement ranges into base clip")

	mapping := selfMapping(0, base.Length())
	replMapping := selfMapping(1, replacement.Length())

	spans, err := NormalizeRanges(replacement.Length(), ranges)
	if err != nil {
		return nil, fmt.Errorf("replace ranges: %w", err)
	}

	for i, span := range spans {
		mapping, err = applySpan(mapping, replMapping, span)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"function": "ReplaceRanges",
				"position": i,
				"start":    span.Start,
				"end":      span.End,
				"error":    err.Error(),
			}).Error("Range application failed")
			return nil, fmt.Errorf("replace ranges: range %d: %w", i, err)
		}
	}

	out, err := SelectFrames(mat, []clip.Clip{base, replacement}, mapping)
	if err != nil {
		return nil, fmt.Errorf("replace ranges: %w", err)
	}
	return out, nil
}

// selfMapping builds a clip's full identity mapping: frame j points at
// (clipID, j).
func selfMapping(clipID, length int) []clip.FrameRef {
	mapping := make([]clip.FrameRef, length)
	for j := range mapping {
		mapping[j] = clip.FrameRef{Clip: clipID, Frame: j}
	}
	return mapping
}

// applySpan splices one normalized span into the accumulating output
// mapping: replacement entries span.Start..span.End (inclusive),
// prefixed by whatever currently precedes position Start and suffixed
// by whatever currently follows position End in the accumulating
// mapping.
//
// This is the sequential-composition step: it deliberately reads the
// CURRENT mapping, not the original, so successive spans see each
// other's effects. Swapping this function for one that slices the
// original mapping would give independent-range semantics instead.
//
// Reversed spans contribute an empty replacement segment. Either bound
// outside the replacement mapping is an error; positions beyond the
// current mapping's length simply yield an empty prefix remainder or
// suffix.
func applySpan(current, replMapping []clip.FrameRef, span Span) ([]clip.FrameRef, error) {
	if span.Start < 0 || span.Start >= len(replMapping) {
		return nil, fmt.Errorf("%w: start %d resolved outside replacement clip (length %d)",
			clip.ErrIndexOutOfRange, span.Start, len(replMapping))
	}
	if span.End < 0 || span.End >= len(replMapping) {
		return nil, fmt.Errorf("%w: end %d resolved outside replacement clip (length %d)",
			clip.ErrIndexOutOfRange, span.End, len(replMapping))
	}

	segment := replMapping[span.Start : span.Start+span.Count()]

	next := make([]clip.FrameRef, 0, len(current))
	if span.Start > 0 {
		next = append(next, current[:min(span.Start, len(current))]...)
	}
	next = append(next, segment...)
	if span.End+1 < len(current) {
		next = append(next, current[span.End+1:]...)
	}
	return next, nil
}
