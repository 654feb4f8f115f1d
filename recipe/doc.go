// Package recipe composes host-provided filter operations into
// higher-level processing recipes: anti-aliasing, denoising, depth
// round-tripping, and side-by-side comparison stacks.
//
// The package performs no pixel work itself. Every recipe is a fixed
// arrangement of calls into the Library interface, which the host filter
// environment implements. Recipes select their variant through explicit
// enumerated modes (AAMode, DenoiseMode) with one handler per variant.
package recipe
