package recipe

import (
	"fmt"

	"github.com/opd-ai/framesplice/clip"
	"github.com/opd-ai/framesplice/cliptest"
)

// fakeLibrary implements Library and Denoiser, recording every call so
// tests can assert on the exact filter arrangement a recipe produces.
// Set failOn to force the named call to fail.
type fakeLibrary struct {
	calls  []string
	failOn string
}

func (f *fakeLibrary) record(call string) error {
	f.calls = append(f.calls, call)
	if f.failOn != "" && call == f.failOn {
		return fmt.Errorf("forced failure in %s", call)
	}
	return nil
}

// derive returns a new in-memory clip with the transformed format,
// standing in for the host's filter output.
func derive(c clip.Clip, format clip.Format) clip.Clip {
	return cliptest.NewMemoryClip(format, c.Length())
}

func (f *fakeLibrary) Depth(c clip.Clip, bits int) (clip.Clip, error) {
	if err := f.record(fmt.Sprintf("Depth(%d)", bits)); err != nil {
		return nil, err
	}
	format := c.Format()
	format.BitDepth = bits
	return derive(c, format), nil
}

func (f *fakeLibrary) ExtractPlane(c clip.Clip, plane int) (clip.Clip, error) {
	if err := f.record(fmt.Sprintf("ExtractPlane(%d)", plane)); err != nil {
		return nil, err
	}
	format := c.Format()
	format.ColorFamily = clip.ColorFamilyGray
	return derive(c, format), nil
}

func (f *fakeLibrary) MergePlanes(luma, ref clip.Clip) (clip.Clip, error) {
	if err := f.record("MergePlanes"); err != nil {
		return nil, err
	}
	return derive(ref, ref.Format()), nil
}

func (f *fakeLibrary) Transpose(c clip.Clip) (clip.Clip, error) {
	if err := f.record("Transpose"); err != nil {
		return nil, err
	}
	format := c.Format()
	format.Width, format.Height = format.Height, format.Width
	return derive(c, format), nil
}

func (f *fakeLibrary) Resize(c clip.Clip, width, height int, shiftTop float64) (clip.Clip, error) {
	if err := f.record(fmt.Sprintf("Resize(%d, %d, %v)", width, height, shiftTop)); err != nil {
		return nil, err
	}
	format := c.Format()
	format.Width, format.Height = width, height
	return derive(c, format), nil
}

func (f *fakeLibrary) NNEDI3(c clip.Clip, opts NNEDI3Options) (clip.Clip, error) {
	if err := f.record(fmt.Sprintf("NNEDI3(field=%d, dr=%v)", opts.Field, opts.DoubleRate)); err != nil {
		return nil, err
	}
	format := c.Format()
	if opts.DoubleRate {
		format.Height *= 2
	}
	return derive(c, format), nil
}

func (f *fakeLibrary) EEDI3(c clip.Clip, opts EEDI3Options) (clip.Clip, error) {
	if err := f.record(fmt.Sprintf("EEDI3(field=%d, dr=%v)", opts.Field, opts.DoubleRate)); err != nil {
		return nil, err
	}
	format := c.Format()
	if opts.DoubleRate {
		format.Height *= 2
	}
	return derive(c, format), nil
}

func (f *fakeLibrary) Convolution(c clip.Clip, matrix []int) (clip.Clip, error) {
	if err := f.record(fmt.Sprintf("Convolution(len=%d)", len(matrix))); err != nil {
		return nil, err
	}
	return derive(c, c.Format()), nil
}

func (f *fakeLibrary) Expr(clips []clip.Clip, expr string) (clip.Clip, error) {
	if err := f.record(fmt.Sprintf("Expr(clips=%d)", len(clips))); err != nil {
		return nil, err
	}
	return derive(clips[0], clips[0].Format()), nil
}

func (f *fakeLibrary) Repair(c, ref clip.Clip, mode int) (clip.Clip, error) {
	if err := f.record(fmt.Sprintf("Repair(%d)", mode)); err != nil {
		return nil, err
	}
	return derive(c, c.Format()), nil
}

func (f *fakeLibrary) Stack(clips []clip.Clip, vertical bool) (clip.Clip, error) {
	if err := f.record(fmt.Sprintf("Stack(clips=%d, vertical=%v)", len(clips), vertical)); err != nil {
		return nil, err
	}
	return derive(clips[0], clips[0].Format()), nil
}

func (f *fakeLibrary) KNLMeans(c clip.Clip, d, a int, h float64) (clip.Clip, error) {
	if err := f.record(fmt.Sprintf("KNLMeans(d=%d, a=%d, h=%v)", d, a, h)); err != nil {
		return nil, err
	}
	return derive(c, c.Format()), nil
}

func (f *fakeLibrary) SMDegrain(c clip.Clip, prefilter int, refineMotion bool) (clip.Clip, error) {
	if err := f.record(fmt.Sprintf("SMDegrain(prefilter=%d, refine=%v)", prefilter, refineMotion)); err != nil {
		return nil, err
	}
	return derive(c, c.Format()), nil
}

func (f *fakeLibrary) DFTTest(c clip.Clip, sigma float64, tbsize, sbsize, sosize int) (clip.Clip, error) {
	if err := f.record(fmt.Sprintf("DFTTest(sigma=%v, tbsize=%d, sbsize=%d, sosize=%d)", sigma, tbsize, sbsize, sosize)); err != nil {
		return nil, err
	}
	return derive(c, c.Format()), nil
}

func (f *fakeLibrary) BM3D(c, ref clip.Clip, sigma float64, radius int) (clip.Clip, error) {
	if err := f.record(fmt.Sprintf("BM3D(sigma=%v, radius=%d)", sigma, radius)); err != nil {
		return nil, err
	}
	return derive(c, c.Format()), nil
}
