package remap

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/framesplice/clip"
)

// SelectFrames builds a new clip of length len(mapping) whose frame n
// resolves to sources[mapping[n].Clip] at frame mapping[n].Frame.
//
// All validation happens eagerly, before the host materializer is
// invoked and therefore before any frame can be fetched:
//
//   - mat non-nil and sources non-empty, else clip.ErrInvalidInput
//   - mapping non-empty, else clip.ErrInvalidInput
//   - every entry within bounds, else clip.ErrIndexOutOfRange
//   - every source sharing one Format, else clip.ErrFormatMismatch
//
// The returned clip is lazy: no source frame is decoded until a consumer
// requests the corresponding output frame, and repeated requests
// re-fetch rather than cache. Both properties are delegated to the
// host's Materializer.
func SelectFrames(mat clip.Materializer, sources []clip.Clip, mapping []clip.FrameRef) (clip.Clip, error) {
	logrus.WithFields(logrus.Fields{
		"function":     "SelectFrames",
		"source_count": len(sources),
		"frame_count":  len(mapping),
	}).Debug("Selecting frames across clips")

	if mat == nil {
		return nil, fmt.Errorf("select frames: %w: nil materializer", clip.ErrInvalidInput)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("select frames: %w: no source clips", clip.ErrInvalidInput)
	}
	if len(mapping) == 0 {
		return nil, fmt.Errorf("select frames: %w: empty index mapping", clip.ErrInvalidInput)
	}

	if err := validateMapping(sources, mapping); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "SelectFrames",
			"error":    err.Error(),
		}).Error("Index mapping validation failed")
		return nil, fmt.Errorf("select frames: %w", err)
	}

	if err := validateFormats(sources); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "SelectFrames",
			"error":    err.Error(),
		}).Error("Source format validation failed")
		return nil, fmt.Errorf("select frames: %w", err)
	}

	out, err := mat.Materialize(mapping, sources)
	if err != nil {
		return nil, fmt.Errorf("select frames: materialize: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function":      "SelectFrames",
		"output_length": out.Length(),
	}).Debug("Frame selection materialized")

	return out, nil
}

// validateMapping checks every entry against the source list's bounds.
func validateMapping(sources []clip.Clip, mapping []clip.FrameRef) error {
	for n, ref := range mapping {
		if ref.Clip < 0 || ref.Clip >= len(sources) {
			return fmt.Errorf("%w: output frame %d references clip %d, have %d clips",
				clip.ErrIndexOutOfRange, n, ref.Clip, len(sources))
		}
		if length := sources[ref.Clip].Length(); ref.Frame < 0 || ref.Frame >= length {
			return fmt.Errorf("%w: output frame %d references frame %d of clip %d (length %d)",
				clip.ErrIndexOutOfRange, n, ref.Frame, ref.Clip, length)
		}
	}
	return nil
}

// validateFormats checks that every source shares the first's format.
func validateFormats(sources []clip.Clip) error {
	want := sources[0].Format()
	for i, src := range sources[1:] {
		if got := src.Format(); got != want {
			return fmt.Errorf("%w: clip 0 is %s, clip %d is %s",
				clip.ErrFormatMismatch, want, i+1, got)
		}
	}
	return nil
}
