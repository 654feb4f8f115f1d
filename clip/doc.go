// Package clip defines the narrow contract between framesplice and the
// host frame-evaluation environment.
//
// framesplice never decodes, filters, or schedules frames itself. The host
// owns all of that and exposes it through two small interfaces:
//
//   - Clip: a fixed-length, positionally indexable sequence of frames with
//     a constant per-frame format. FrameAt is a pure fetch; the host may
//     evaluate it lazily on its own scheduler.
//
//   - Materializer: the host's lazy-construction facility. Given an index
//     mapping and a list of source clips, it returns a new Clip whose
//     frame n resolves to sources[mapping[n].Clip] at mapping[n].Frame.
//
// Everything else in this package is plumbing for those two interfaces:
// the Format value used for the selector's equality check, the opaque
// Frame payload with typed property access, and the sentinel errors the
// rest of the library classifies failures with.
package clip
