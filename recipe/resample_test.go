package recipe

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/framesplice/clip"
	"github.com/opd-ai/framesplice/cliptest"
)

func TestQuickResample(t *testing.T) {
	float32Format := clip.Format{
		Width:       1920,
		Height:      1080,
		BitDepth:    32,
		ColorFamily: clip.ColorFamilyYUV,
		SampleType:  clip.SampleFloat,
	}

	t.Run("round trips through 16 bit", func(t *testing.T) {
		lib := &fakeLibrary{}
		src := cliptest.NewMemoryClip(float32Format, 5)

		var sawBits int
		out, err := QuickResample(lib, src, func(c clip.Clip) (clip.Clip, error) {
			sawBits = c.Format().BitDepth
			return c, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 16, sawBits, "filter runs on the downconverted clip")
		assert.Equal(t, []string{"Depth(16)", "Depth(32)"}, lib.calls)
		assert.Equal(t, 32, out.Format().BitDepth)
	})

	t.Run("falls back to 8 bit", func(t *testing.T) {
		lib := &fakeLibrary{}
		src := cliptest.NewMemoryClip(float32Format, 5)

		out, err := QuickResample(lib, src, func(c clip.Clip) (clip.Clip, error) {
			if c.Format().BitDepth == 16 {
				return nil, fmt.Errorf("filter needs 8-bit input")
			}
			return c, nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Depth(16)", "Depth(8)", "Depth(32)"}, lib.calls)
		assert.Equal(t, 32, out.Format().BitDepth)
	})

	t.Run("both depths fail", func(t *testing.T) {
		lib := &fakeLibrary{}
		src := cliptest.NewMemoryClip(float32Format, 5)

		out, err := QuickResample(lib, src, func(c clip.Clip) (clip.Clip, error) {
			return nil, errors.New("filter rejects everything")
		})
		require.Error(t, err)
		assert.Nil(t, out)
		assert.Contains(t, err.Error(), "filter failed at 16 and 8 bit")
	})

	t.Run("nil arguments", func(t *testing.T) {
		lib := &fakeLibrary{}
		src := cliptest.NewMemoryClip(float32Format, 5)
		passthrough := func(c clip.Clip) (clip.Clip, error) { return c, nil }

		_, err := QuickResample(nil, src, passthrough)
		assert.ErrorIs(t, err, ErrNilLibrary)

		_, err = QuickResample(lib, nil, passthrough)
		assert.ErrorIs(t, err, clip.ErrInvalidInput)

		_, err = QuickResample(lib, src, nil)
		assert.ErrorIs(t, err, clip.ErrInvalidInput)
	})
}
