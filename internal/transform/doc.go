// Package transform provides deterministic geometric transformations on
// in-memory raster images: resizing, rectangular cropping with bounds
// clamping, rotation with bounding-box expansion, border compositing, and
// automatic whitespace trimming.
//
// Every operation treats its input image as read-only and returns a freshly
// allocated buffer; callers keep ownership of the input. There is no shared
// state between calls, so independent transformations may run concurrently
// on separate goroutines without coordination. A single image must not be
// mutated while a transformation reads it.
//
// Decoding, encoding, and color management are out of scope; see the raster
// package for loading and result encoding. Skew-angle estimation is consumed
// through the AngleEstimator interface and implemented by the skew package.
package transform
