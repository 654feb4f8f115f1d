package recipe

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/framesplice/clip"
)

// QuickResample converts the clip to 16 bit, runs fn, and restores the
// original bit depth. Useful for filters that only operate at 16 bit or
// below when the working clip is higher precision or float.
//
// If fn fails at 16 bit, one retry is made at 8 bit before giving up,
// since some hosts only provide the wrapped filter for 8-bit input.
func QuickResample(lib Library, c clip.Clip, fn Step) (clip.Clip, error) {
	if lib == nil {
		return nil, fmt.Errorf("quick resample: %w", ErrNilLibrary)
	}
	if c == nil || fn == nil {
		return nil, fmt.Errorf("quick resample: %w: nil clip or filter", clip.ErrInvalidInput)
	}

	originalBits := c.Format().BitDepth
	logrus.WithFields(logrus.Fields{
		"function":      "QuickResample",
		"original_bits": originalBits,
	}).Debug("Round-tripping clip depth for filter")

	filtered, err := resampleAt(lib, c, fn, 16)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "QuickResample",
			"error":    err.Error(),
		}).Debug("16-bit pass failed, retrying at 8 bit")
		filtered, err = resampleAt(lib, c, fn, 8)
		if err != nil {
			return nil, fmt.Errorf("quick resample: filter failed at 16 and 8 bit: %w", err)
		}
	}

	out, err := lib.Depth(filtered, originalBits)
	if err != nil {
		return nil, fmt.Errorf("quick resample: restore depth: %w", err)
	}
	return out, nil
}

func resampleAt(lib Library, c clip.Clip, fn Step, bits int) (clip.Clip, error) {
	down, err := lib.Depth(c, bits)
	if err != nil {
		return nil, err
	}
	return fn(down)
}
