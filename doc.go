// Package framesplice provides convenience operations over a host video
// frame-evaluation environment: splicing clips together by frame range,
// interleaving frames from several clips for comparison, and composing
// the host's filters into anti-aliasing and denoising recipes.
//
// The host environment owns decoding, filtering, and frame scheduling;
// framesplice only arranges calls into it and keeps the frame-index
// bookkeeping honest. Hosts plug in through the clip.Clip and
// clip.Materializer interfaces.
//
// Example:
//
//	// Replace frames 1000-1200 of the source with the filtered clip,
//	// plus everything from frame 5000 on.
//	out, err := framesplice.ReplaceRanges(host, src, filtered, []framesplice.Range{
//	    framesplice.Between(1000, 1200),
//	    framesplice.From(5000),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Interleave the same frames from both clips to eyeball the diff.
//	cmp, err := framesplice.Compare(host, []clip.Clip{src, filtered},
//	    []int{1000, 1100, 1200}, framesplice.CompareOptions{})
//
// Ranges are inclusive, may be open on either side, and negative bounds
// count back from the clip's end: Between(200, -1) covers frame 200
// through the second-to-last frame.
package framesplice
