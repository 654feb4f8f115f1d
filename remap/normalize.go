package remap

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/framesplice/clip"
)

// NormalizeRanges resolves ranges into concrete inclusive Spans relative
// to a reference clip of the given length. Resolution per range:
//
//   - open low bound  → 0
//   - open high bound → length - 1
//   - LastFrame()     → (length-1, length-1)
//   - Frame(n)        → (n, n)
//   - any negative bound then wraps independently: b = length - 1 + b
//
// The result preserves input order and count. No bounds clamping is
// performed beyond the negative wrap: a resolved index outside
// [0, length-1] is a caller error that surfaces as
// clip.ErrIndexOutOfRange when the span is consumed, never silently
// adjusted here. Reversed
// bounds (start > end) are likewise passed through; they denote an
// empty sub-range downstream, not an error.
//
// Normalization is idempotent: feeding resolved spans back in as
// Between pairs yields the same spans.
func NormalizeRanges(length int, ranges []Range) ([]Span, error) {
	logrus.WithFields(logrus.Fields{
		"function":    "NormalizeRanges",
		"ref_length":  length,
		"range_count": len(ranges),
	}).Debug("Normalizing frame ranges")

	if length < 1 {
		return nil, fmt.Errorf("normalize ranges: %w: reference length %d, need at least 1", clip.ErrInvalidInput, length)
	}

	spans := make([]Span, 0, len(ranges))
	for i, r := range ranges {
		span, err := normalizeOne(length, r)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"function": "NormalizeRanges",
				"position": i,
				"range":    r.String(),
				"error":    err.Error(),
			}).Error("Range normalization failed")
			return nil, fmt.Errorf("normalize ranges: range %d: %w", i, err)
		}
		spans = append(spans, span)
	}

	return spans, nil
}

// normalizeOne applies the resolution rules to a single range.
func normalizeOne(length int, r Range) (Span, error) {
	var start, end int

	switch r.kind {
	case rangePair:
		start, end = r.start, r.end
		if r.openLow {
			start = 0
		}
		if r.openHigh {
			end = length - 1
		}
	case rangeLastFrame:
		start, end = length-1, length-1
	case rangeSingle:
		start, end = r.start, r.start
	default:
		return Span{}, fmt.Errorf("%w: zero-value Range", clip.ErrBadRange)
	}

	if start < 0 {
		start = length - 1 + start
	}
	if end < 0 {
		end = length - 1 + end
	}

	return Span{Start: start, End: end}, nil
}
