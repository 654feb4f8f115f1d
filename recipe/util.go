package recipe

import (
	"fmt"
	"math"

	"github.com/opd-ai/framesplice/clip"
)

// WidthForHeight returns the width matching height at the given aspect
// ratio. A non-positive aspect defaults to 16:9. evenOnly rounds the
// result down to an even value, which chroma subsampling requires.
func WidthForHeight(height int, aspect float64, evenOnly bool) int {
	if aspect <= 0 {
		aspect = 16.0 / 9.0
	}
	width := int(math.Round(float64(height) * aspect))
	if evenOnly {
		width = width / 2 * 2
	}
	return width
}

// ScaleThreshold scales a [0, 1] float threshold to the integer range of
// the given format. Thresholds above 1 are assumed to already be in a
// native range: the format's own, or the range of assumeBits when
// non-zero. Float formats take float thresholds as-is.
func ScaleThreshold(thresh float64, format clip.Format, assumeBits int) (float64, error) {
	if thresh < 0 {
		return 0, fmt.Errorf("scale threshold: %w: %v", ErrNegativeThreshold, thresh)
	}
	if thresh > 1 {
		if assumeBits == 0 {
			return thresh, nil
		}
		return math.Round(thresh / float64((int64(1)<<assumeBits)-1) * float64((int64(1)<<format.BitDepth)-1)), nil
	}
	if format.SampleType == clip.SampleFloat {
		return thresh, nil
	}
	return math.Round(thresh * float64((int64(1)<<format.BitDepth)-1)), nil
}

// StackCompare resizes two clips to a common size and stacks them side
// by side (or vertically) for frame-accurate source matching. Bit depth
// and color family must already match; resolution may differ since both
// clips are resampled to the target size.
//
// A zero height takes the first clip's height; a zero width derives
// from the first clip's aspect ratio.
func StackCompare(lib Library, a, b clip.Clip, width, height int, vertical bool) (clip.Clip, error) {
	if lib == nil {
		return nil, fmt.Errorf("stack compare: %w", ErrNilLibrary)
	}
	if a == nil || b == nil {
		return nil, fmt.Errorf("stack compare: %w: nil clip", clip.ErrInvalidInput)
	}
	if a.Format().BitDepth != b.Format().BitDepth {
		return nil, fmt.Errorf("stack compare: %w: bit depth %d vs %d",
			clip.ErrFormatMismatch, a.Format().BitDepth, b.Format().BitDepth)
	}
	if a.Format().ColorFamily != b.Format().ColorFamily {
		return nil, fmt.Errorf("stack compare: %w: color family %s vs %s",
			clip.ErrFormatMismatch, a.Format().ColorFamily, b.Format().ColorFamily)
	}

	if height == 0 {
		height = a.Format().Height
	}
	if width == 0 {
		width = WidthForHeight(height, float64(a.Format().Width)/float64(a.Format().Height), true)
	}

	left, err := lib.Resize(a, width, height, 0)
	if err != nil {
		return nil, fmt.Errorf("stack compare: %w", err)
	}
	right, err := lib.Resize(b, width, height, 0)
	if err != nil {
		return nil, fmt.Errorf("stack compare: %w", err)
	}

	out, err := lib.Stack([]clip.Clip{left, right}, vertical)
	if err != nil {
		return nil, fmt.Errorf("stack compare: %w", err)
	}
	return out, nil
}
