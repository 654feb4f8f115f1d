package cliptest

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/framesplice/clip"
)

// MemoryClip implements clip.Clip over a fixed slice of in-memory frames
// and records every fetch for test verification.
type MemoryClip struct {
	format clip.Format
	frames []clip.Frame

	mu      sync.Mutex
	fetched []int
}

// NewMemoryClip creates a clip of the given length. Each frame's Data
// holds its own index as a single byte so tests can tell frames apart,
// and Props carries the index under "index".
func NewMemoryClip(format clip.Format, length int) *MemoryClip {
	frames := make([]clip.Frame, length)
	for i := range frames {
		frames[i] = clip.Frame{
			Data:  []byte{byte(i)},
			Props: map[string]any{"index": i},
		}
	}
	return &MemoryClip{format: format, frames: frames}
}

// NewMemoryClipFrames creates a clip over caller-supplied frames.
func NewMemoryClipFrames(format clip.Format, frames []clip.Frame) *MemoryClip {
	return &MemoryClip{format: format, frames: frames}
}

// Length implements clip.Clip.
func (c *MemoryClip) Length() int { return len(c.frames) }

// Format implements clip.Clip.
func (c *MemoryClip) Format() clip.Format { return c.format }

// FrameAt implements clip.Clip, recording the index in the fetch log.
func (c *MemoryClip) FrameAt(index int) (*clip.Frame, error) {
	if index < 0 || index >= len(c.frames) {
		return nil, fmt.Errorf("memory clip: %w: frame %d of %d", clip.ErrIndexOutOfRange, index, len(c.frames))
	}

	c.mu.Lock()
	c.fetched = append(c.fetched, index)
	c.mu.Unlock()

	return &c.frames[index], nil
}

// Fetched returns a copy of the fetch log: every index passed to
// FrameAt, in call order.
func (c *MemoryClip) Fetched() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]int(nil), c.fetched...)
}

// FailClip implements clip.Clip with a FrameAt that always fails. It
// verifies that validation happens before any fetch: a code path that
// touches a frame of this clip reports the failure immediately.
type FailClip struct {
	ClipFormat clip.Format
	ClipLength int
}

// Length implements clip.Clip.
func (c *FailClip) Length() int { return c.ClipLength }

// Format implements clip.Clip.
func (c *FailClip) Format() clip.Format { return c.ClipFormat }

// FrameAt implements clip.Clip and always fails.
func (c *FailClip) FrameAt(index int) (*clip.Frame, error) {
	return nil, fmt.Errorf("fail clip: frame %d fetched; this clip must never be evaluated", index)
}

// Materializer implements clip.Materializer with lazy in-memory mapped
// clips, mirroring the host's lazy-evaluation facility.
type Materializer struct{}

// NewMaterializer creates a simulated materializer for testing.
func NewMaterializer() *Materializer {
	logrus.WithFields(logrus.Fields{
		"function": "NewMaterializer",
	}).Debug("Creating simulated materializer for testing")
	return &Materializer{}
}

// Materialize implements clip.Materializer. The returned clip resolves
// the mapping on each FrameAt call; nothing is fetched here and nothing
// is cached.
func (m *Materializer) Materialize(mapping []clip.FrameRef, sources []clip.Clip) (clip.Clip, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("materialize: %w: no source clips", clip.ErrInvalidInput)
	}
	return &mappedClip{
		format:  sources[0].Format(),
		mapping: mapping,
		sources: sources,
	}, nil
}

// mappedClip is the lazy clip a Materializer hands out.
type mappedClip struct {
	format  clip.Format
	mapping []clip.FrameRef
	sources []clip.Clip
}

func (c *mappedClip) Length() int { return len(c.mapping) }

func (c *mappedClip) Format() clip.Format { return c.format }

func (c *mappedClip) FrameAt(index int) (*clip.Frame, error) {
	if index < 0 || index >= len(c.mapping) {
		return nil, fmt.Errorf("mapped clip: %w: frame %d of %d", clip.ErrIndexOutOfRange, index, len(c.mapping))
	}
	ref := c.mapping[index]
	return c.sources[ref.Clip].FrameAt(ref.Frame)
}
