package recipe

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/framesplice/clip"
)

// DenoiseMode selects the reference denoiser variant.
type DenoiseMode uint8

const (
	// DenoiseKNLMeans uses non-local means. Good general default.
	DenoiseKNLMeans DenoiseMode = iota
	// DenoiseSMDegrain uses motion-compensated degraining. Better on
	// sources with steady motion.
	DenoiseSMDegrain
	// DenoiseDFTTest uses frequency-domain filtering. Better on
	// fine-grained noise.
	DenoiseDFTTest
)

// String returns a human-readable name for the mode.
func (m DenoiseMode) String() string {
	switch m {
	case DenoiseKNLMeans:
		return "KNLMeans"
	case DenoiseSMDegrain:
		return "SMDegrain"
	case DenoiseDFTTest:
		return "DFTTest"
	default:
		return fmt.Sprintf("DenoiseMode(%d)", uint8(m))
	}
}

// DenoiseOptions configures Denoise.
type DenoiseOptions struct {
	// Mode selects the denoiser that produces the reference clip.
	Mode DenoiseMode
	// BM3D refines the mode's output with a BM3D pass guided by it.
	// When false, the mode's output is returned directly.
	BM3D bool
	// Sigma is the BM3D denoising strength.
	Sigma float64
	// H is the KNLMeans filtering strength.
	H float64
	// RefineMotion enables SMDegrain's motion vector refinement.
	RefineMotion bool
	// SBSize is the DFTTest spatial block size.
	SBSize int
}

// DefaultDenoiseOptions returns the options Denoise assumes when the
// caller passes the zero value.
func DefaultDenoiseOptions() DenoiseOptions {
	return DenoiseOptions{
		Mode:         DenoiseKNLMeans,
		BM3D:         true,
		Sigma:        3,
		H:            1.0,
		RefineMotion: true,
		SBSize:       16,
	}
}

// Denoise runs generic luma denoising: the selected mode produces a
// denoised clip which, unless BM3D is disabled, seeds a BM3D refinement
// pass. Chroma planes pass through untouched; grayscale input returns
// the processed luma directly.
//
// The clip is converted to 16 bit for processing.
func Denoise(lib Library, dn Denoiser, c clip.Clip, opts DenoiseOptions) (clip.Clip, error) {
	if lib == nil || dn == nil {
		return nil, fmt.Errorf("denoise: %w", ErrNilLibrary)
	}
	if c == nil {
		return nil, fmt.Errorf("denoise: %w: nil clip", clip.ErrInvalidInput)
	}

	logrus.WithFields(logrus.Fields{
		"function": "Denoise",
		"mode":     opts.Mode.String(),
		"bm3d":     opts.BM3D,
		"format":   c.Format().String(),
	}).Info("Running denoising recipe")

	work := c
	if work.Format().BitDepth != 16 {
		var err error
		work, err = lib.Depth(work, 16)
		if err != nil {
			return nil, fmt.Errorf("denoise: %w", err)
		}
	}

	clipY, err := lib.ExtractPlane(work, 0)
	if err != nil {
		return nil, fmt.Errorf("denoise: %w", err)
	}

	var refY clip.Clip
	switch opts.Mode {
	case DenoiseKNLMeans:
		refY, err = dn.KNLMeans(clipY, 3, 2, opts.H)
	case DenoiseSMDegrain:
		refY, err = dn.SMDegrain(clipY, 3, opts.RefineMotion)
	case DenoiseDFTTest:
		refY, err = dn.DFTTest(clipY, 4.0, 1, opts.SBSize, opts.SBSize*3/4)
	default:
		return nil, fmt.Errorf("denoise: %w: %s", ErrUnknownMode, opts.Mode)
	}
	if err != nil {
		return nil, fmt.Errorf("denoise: %s: %w", opts.Mode, err)
	}

	denoisedY := refY
	if opts.BM3D {
		denoisedY, err = dn.BM3D(clipY, refY, opts.Sigma, 1)
		if err != nil {
			return nil, fmt.Errorf("denoise: bm3d refinement: %w", err)
		}
	}

	if c.Format().ColorFamily == clip.ColorFamilyGray {
		return denoisedY, nil
	}

	out, err := lib.MergePlanes(denoisedY, work)
	if err != nil {
		return nil, fmt.Errorf("denoise: merge planes: %w", err)
	}
	return out, nil
}
