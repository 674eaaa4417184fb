// Package raster implements a compute-style software rasterizer:
// world-space triangles are projected to screen space and filled with
// depth-shaded pixels by data-parallel invocations over a shared pixel
// buffer.
//
// The pipeline per frame is Clear → barrier → (Project → Bounds →
// Classify → Composite) per triangle. "Nearest fragment wins" is not a
// depth-buffer test: the color channels themselves double as the depth
// proxy. Values are inverted brightness (lower = closer), the buffer is
// cleared to 255 ("infinitely far"), and contested pixels are resolved
// by a lock-free atomic minimum per channel. The final channel value is
// therefore the minimum shade ever proposed, independent of the order in
// which triangles are rasterized.
//
// Conflating depth and color is a deliberate trade-off inherited from
// the design this package reproduces: it removes the depth buffer and
// the test-and-branch entirely, at the cost of grayscale-only output and
// a shade scale the caller must stage the scene for. Adding a real depth
// buffer would be a different renderer, not a fix.
package raster
