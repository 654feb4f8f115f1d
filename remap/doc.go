// Package remap implements the frame-range remapping core of framesplice:
// normalizing user-specified frame ranges into concrete inclusive index
// pairs, selecting frames from one or more clips through a lazily
// evaluated index mapping, and splicing a replacement clip into a base
// clip over a set of ranges.
//
// The three operations compose as a pipeline:
//
//	ReplaceRanges → NormalizeRanges → index mapping → SelectFrames
//
// Ranges are inclusive on both ends. Open bounds extend to the clip's
// first or last frame, and negative bounds wrap from the end
// (length - 1 + bound). Normalization never clamps: a resolved index
// outside the reference clip's bounds stays out of bounds and surfaces
// as ErrIndexOutOfRange when the range is consumed, so caller mistakes
// are observable rather than silently absorbed.
//
// SelectFrames validates every mapping entry and the format of every
// source clip before materializing anything, so malformed input is
// rejected at the call site rather than inside a deferred frame fetch
// far downstream. Materialization itself is delegated to the host's
// clip.Materializer; no frame is fetched or cached by this package.
package remap
