// Package noise samples smooth, tileable pseudo-noise from a small
// precomputed lookup table instead of per-call hashing.
//
// A Sampler answers 2D, 3D, and 4D queries against a flat 2D table by
// folding the extra axes into the UV coordinate with fixed texel
// offsets. The table is authored so that some channels are shifted
// copies of others (see package lut); that redundancy lets a single
// fetch stand in for lookups the extra axes would otherwise need.
//
// Everything here is a pure function of the input coordinate, the
// Params constants, and the read-only table. There is no shared mutable
// state, so a single Sampler may be used from any number of goroutines.
//
// Preconditions, not validated at runtime:
//
//   - The Params used for sampling must match the Params the table was
//     built with. A mismatch produces plausible-looking but wrong noise
//     with no error signal; the table format carries no metadata to
//     check against.
//   - SampleScalar3, SamplePair3, and SampleScalar4 require a table with
//     the shifted-channel redundancy. Against a table of four
//     independent channels they silently degrade in the same way.
//   - Table channels are linear values. Loading an image that was
//     gamma-encoded breaks the exact channel equality the scalar entry
//     points depend on.
package noise
