package recipe

import "github.com/opd-ai/framesplice/clip"

// NNEDI3Options configures one pass of neural edge-directed
// interpolation.
type NNEDI3Options struct {
	// Field selects which field the pass keeps (0 bottom, 1 top).
	Field int
	// DoubleRate emits both fields, doubling the frame's height.
	DoubleRate bool
	// NSize is the local neighborhood size preset.
	NSize int
	// NNS is the predictor neural network size preset.
	NNS int
	// Quality trades speed for prediction quality.
	Quality int
}

// EEDI3Options configures one pass of the EEDI3 edge interpolator.
type EEDI3Options struct {
	Field      int
	DoubleRate bool
	Alpha      float64
	Beta       float64
}

// Library is the narrow surface of the host filter environment the
// recipes compose. Implementations wrap the host's actual filter graph;
// every method returns a new clip and leaves its inputs untouched.
type Library interface {
	// Depth converts the clip to the given bit depth.
	Depth(c clip.Clip, bits int) (clip.Clip, error)

	// ExtractPlane returns plane number plane as a grayscale clip.
	ExtractPlane(c clip.Clip, plane int) (clip.Clip, error)

	// MergePlanes recombines a processed luma clip with the chroma
	// planes of ref.
	MergePlanes(luma, ref clip.Clip) (clip.Clip, error)

	// Transpose swaps the clip's horizontal and vertical axes.
	Transpose(c clip.Clip) (clip.Clip, error)

	// Resize resamples to width x height. shiftTop moves the sampling
	// grid, compensating the half-pixel offset interpolators introduce.
	Resize(c clip.Clip, width, height int, shiftTop float64) (clip.Clip, error)

	// NNEDI3 runs one neural edge-directed interpolation pass.
	NNEDI3(c clip.Clip, opts NNEDI3Options) (clip.Clip, error)

	// EEDI3 runs one EEDI3 edge interpolation pass.
	EEDI3(c clip.Clip, opts EEDI3Options) (clip.Clip, error)

	// Convolution applies a spatial convolution matrix.
	Convolution(c clip.Clip, matrix []int) (clip.Clip, error)

	// Expr evaluates a per-pixel RPN expression across clips.
	Expr(clips []clip.Clip, expr string) (clip.Clip, error)

	// Repair clamps c against ref using the given repair mode.
	Repair(c, ref clip.Clip, mode int) (clip.Clip, error)

	// Stack composes clips side by side, or top to bottom when
	// vertical is set.
	Stack(clips []clip.Clip, vertical bool) (clip.Clip, error)
}

// Denoiser is the host's denoising surface, split from Library since
// hosts commonly provide these through separate plugins.
type Denoiser interface {
	// KNLMeans runs non-local means denoising with temporal radius d,
	// search radius a, and filtering strength h.
	KNLMeans(c clip.Clip, d, a int, h float64) (clip.Clip, error)

	// SMDegrain runs motion-compensated degraining.
	SMDegrain(c clip.Clip, prefilter int, refineMotion bool) (clip.Clip, error)

	// DFTTest runs frequency-domain denoising.
	DFTTest(c clip.Clip, sigma float64, tbsize, sbsize, sosize int) (clip.Clip, error)

	// BM3D runs block-matching 3D denoising guided by ref.
	BM3D(c, ref clip.Clip, sigma float64, radius int) (clip.Clip, error)
}

// Step is one stage of a recipe: a pure clip transformation.
type Step func(clip.Clip) (clip.Clip, error)

// RunChain threads a clip through steps in order, stopping at the first
// failure.
func RunChain(c clip.Clip, steps ...Step) (clip.Clip, error) {
	current := c
	for _, step := range steps {
		next, err := step(current)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}
