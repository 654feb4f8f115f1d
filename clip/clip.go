package clip

import "fmt"

// ColorFamily identifies the plane layout of a clip's frames.
type ColorFamily uint8

const (
	// ColorFamilyGray indicates a single luma plane.
	ColorFamilyGray ColorFamily = iota
	// ColorFamilyYUV indicates one luma and two chroma planes.
	ColorFamilyYUV
	// ColorFamilyRGB indicates three color planes.
	ColorFamilyRGB
)

// String returns a human-readable name for the color family.
func (cf ColorFamily) String() string {
	switch cf {
	case ColorFamilyGray:
		return "Gray"
	case ColorFamilyYUV:
		return "YUV"
	case ColorFamilyRGB:
		return "RGB"
	default:
		return fmt.Sprintf("ColorFamily(%d)", uint8(cf))
	}
}

// SampleType identifies how pixel values are stored.
type SampleType uint8

const (
	// SampleInteger indicates integer pixel values.
	SampleInteger SampleType = iota
	// SampleFloat indicates floating-point pixel values.
	SampleFloat
)

// String returns a human-readable name for the sample type.
func (st SampleType) String() string {
	switch st {
	case SampleInteger:
		return "Integer"
	case SampleFloat:
		return "Float"
	default:
		return fmt.Sprintf("SampleType(%d)", uint8(st))
	}
}

// Format describes the per-frame shape of a clip. It is fixed at clip
// construction and compared by value: two clips are compatible for
// selection only when their Formats are equal.
type Format struct {
	Width       int
	Height      int
	BitDepth    int
	ColorFamily ColorFamily
	SampleType  SampleType
}

// String returns a compact description, e.g. "1920x1080 YUV 16bit Integer".
func (f Format) String() string {
	return fmt.Sprintf("%dx%d %s %dbit %s", f.Width, f.Height, f.ColorFamily, f.BitDepth, f.SampleType)
}

// Clip is a fixed-length, positionally indexable frame sequence supplied
// by the host environment. Implementations may evaluate FrameAt lazily;
// the only requirement is that the frame at a given index is a pure
// function of that index for the clip's lifetime.
type Clip interface {
	// Length returns the frame count, fixed at construction.
	Length() int

	// Format returns the per-frame format, fixed at construction.
	Format() Format

	// FrameAt fetches the frame at index, valid for 0 <= index < Length().
	FrameAt(index int) (*Frame, error)
}

// FrameRef identifies exactly one frame in exactly one clip of a source
// list: source clip Clip at frame position Frame.
type FrameRef struct {
	Clip  int
	Frame int
}

// Materializer is the host's lazy-evaluation facility. Materialize
// returns a new Clip of length len(mapping) whose frame n resolves, on
// demand, to sources[mapping[n].Clip] at frame mapping[n].Frame.
//
// Implementations must not fetch any source frame during Materialize
// itself, must not cache fetched frames, and must take ownership of
// mapping without mutating it.
type Materializer interface {
	Materialize(mapping []FrameRef, sources []Clip) (Clip, error)
}
