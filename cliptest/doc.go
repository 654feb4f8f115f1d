// Package cliptest provides an in-memory host environment for
// deterministic testing of framesplice.
//
// # Overview
//
// Production deployments back the clip.Clip and clip.Materializer
// interfaces with a real frame server whose scheduler decodes frames on
// demand. This package mirrors that contract entirely in memory so tests
// can verify index bookkeeping, laziness, and error paths without a
// frame server.
//
// # Components
//
//   - MemoryClip: a clip over a fixed slice of frames, with a fetch log
//     recording every FrameAt call for laziness verification.
//
//   - FailClip: a clip whose FrameAt always fails. Use it to prove a
//     code path validates without fetching: if the fetch happens, the
//     test sees the error.
//
//   - Materializer: a clip.Materializer returning lazy mapped clips.
//     Frames are resolved through the mapping on each FrameAt call and
//     never cached, matching the host contract.
//
// # Usage
//
//	base := cliptest.NewMemoryClip(format, 10)
//	repl := cliptest.NewMemoryClip(format, 10)
//	mat := cliptest.NewMaterializer()
//
//	out, err := remap.ReplaceRanges(mat, base, repl, []remap.Range{remap.Between(0, 1)})
//	// base.Fetched() is still empty: nothing was evaluated yet.
//
// # Thread Safety
//
// MemoryClip's fetch log is guarded by a mutex; all types are safe for
// concurrent use from multiple goroutines.
package cliptest
