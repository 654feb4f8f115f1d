package framesplice

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/framesplice/clip"
	"github.com/opd-ai/framesplice/remap"
)

// Range designates one or more frame positions within a clip. See the
// remap package for resolution rules.
type Range = remap.Range

// Frame designates the single frame at index n. Negative n wraps from
// the clip's end.
func Frame(n int) Range { return remap.Frame(n) }

// Between designates the inclusive span from start to end.
func Between(start, end int) Range { return remap.Between(start, end) }

// From designates the inclusive span from start to the clip's last frame.
func From(start int) Range { return remap.From(start) }

// Until designates the inclusive span from the clip's first frame to end.
func Until(end int) Range { return remap.Until(end) }

// Whole designates the entire clip.
func Whole() Range { return remap.Whole() }

// LastFrame designates the clip's final frame only.
func LastFrame() Range { return remap.LastFrame() }

// ReplaceRanges splices replacement into base over the given ranges:
// inside each range the output takes replacement's frames, elsewhere it
// keeps base's. Nil ranges is the identity and returns base untouched.
// See remap.ReplaceRanges for the exact composition rules.
func ReplaceRanges(mat clip.Materializer, base, replacement clip.Clip, ranges []Range) (clip.Clip, error) {
	return remap.ReplaceRanges(mat, base, replacement, ranges)
}

// SelectFrames builds a clip from an explicit index mapping across one
// or more source clips. See remap.SelectFrames.
func SelectFrames(mat clip.Materializer, sources []clip.Clip, mapping []clip.FrameRef) (clip.Clip, error) {
	return remap.SelectFrames(mat, sources, mapping)
}

// Resizer resamples a clip to new dimensions. recipe.Library satisfies
// it; Compare needs nothing more from the host.
type Resizer interface {
	Resize(c clip.Clip, width, height int, shiftTop float64) (clip.Clip, error)
}

// CompareOptions configures Compare.
type CompareOptions struct {
	// MatchClips resizes clips whose dimensions differ from the first
	// clip's before interleaving. Requires Lib.
	MatchClips bool

	// Lib is the host resizer used when MatchClips is set.
	Lib Resizer
}

// Compare interleaves the given frames from each clip into one output:
// for every requested frame number, one frame from each clip in turn.
// Intended for eyeballing a source against its filtered version, so the
// natural clip order is [src, filtered].
//
// At least two clips are required, and all clips must share a format;
// with MatchClips set, dimension differences are resolved by resizing
// to the first clip's size.
func Compare(mat clip.Materializer, clips []clip.Clip, frames []int, opts CompareOptions) (clip.Clip, error) {
	logrus.WithFields(logrus.Fields{
		"function":    "Compare",
		"clip_count":  len(clips),
		"frame_count": len(frames),
	}).Debug("Interleaving comparison frames")

	if len(clips) < 2 {
		return nil, fmt.Errorf("compare: %w: need at least two clips, have %d", clip.ErrInvalidInput, len(clips))
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("compare: %w: no frames requested", clip.ErrInvalidInput)
	}

	sources, err := matchClips(clips, opts)
	if err != nil {
		return nil, fmt.Errorf("compare: %w", err)
	}

	mapping := make([]clip.FrameRef, 0, len(frames)*len(sources))
	for _, f := range frames {
		for i := range sources {
			mapping = append(mapping, clip.FrameRef{Clip: i, Frame: f})
		}
	}

	out, err := remap.SelectFrames(mat, sources, mapping)
	if err != nil {
		return nil, fmt.Errorf("compare: %w", err)
	}
	return out, nil
}

// matchClips resizes clips to the first clip's dimensions when asked,
// or rejects dimension mismatches outright.
func matchClips(clips []clip.Clip, opts CompareOptions) ([]clip.Clip, error) {
	ref := clips[0].Format()
	out := make([]clip.Clip, len(clips))
	out[0] = clips[0]

	for i, c := range clips[1:] {
		format := c.Format()
		if format.Width == ref.Width && format.Height == ref.Height {
			out[i+1] = c
			continue
		}
		if !opts.MatchClips || opts.Lib == nil {
			return nil, fmt.Errorf("%w: clip %d is %dx%d, clip 0 is %dx%d (set MatchClips to resize)",
				clip.ErrFormatMismatch, i+1, format.Width, format.Height, ref.Width, ref.Height)
		}
		resized, err := opts.Lib.Resize(c, ref.Width, ref.Height, 0)
		if err != nil {
			return nil, fmt.Errorf("match clip %d: %w", i+1, err)
		}
		out[i+1] = resized
	}
	return out, nil
}
