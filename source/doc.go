// Package source loads clips from media files by dispatching to a
// host-registered indexer based on the file's container format.
//
// The package performs no decoding. Hosts register Indexer
// implementations under well-known names (lsmas, ffms2, d2v, dgindex,
// image) and Load picks one per file: external-index formats go to
// their dedicated indexer, images to the image importer, m2ts streams
// to lsmas, and everything else to ffms2 unless lsmas is forced.
//
// Container formats that misbehave under direct indexing (.iso, .ts,
// .vob) are rejected outright: index them externally first.
package source
