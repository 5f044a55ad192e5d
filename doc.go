// Package kanvas is a software 2D raster graphics library.
//
// # Overview
//
// kanvas renders vector geometry into in-memory pixel buffers with no
// GPU or cgo dependency. It provides a stateful drawing surface with a
// transform and clip stack, scanline rasterization with optional
// anti-aliasing, stroke expansion with caps, joins, and dashing,
// Porter-Duff and separable blend modes, and gradient, bitmap, and
// custom shaders.
//
// # Quick Start
//
//	import "github.com/ygdrasil-io/kanvas"
//
//	canvas, _ := kanvas.NewCanvas(512, 512)
//	canvas.Clear(kanvas.White)
//
//	paint := kanvas.NewPaint()
//	paint.Color = kanvas.Red
//	canvas.DrawCircle(256, 256, 100, paint)
//
//	img := canvas.Pixmap().Image() // *image.NRGBA for encoding
//
// # Architecture
//
// The library is organized into:
//   - Public API: Canvas, Device, Pixmap, Path, Paint, Matrix
//   - Shading: gradient, bitmap, and custom shaders, color filters
//   - Internal: raster (scanline coverage), stroke (outline
//     expansion), clip (region algebra), blend (compositing)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// Pixel centers sit at half-integer coordinates: the rectangle
// (0, 0, 1, 1) covers exactly the pixel at (0, 0).
//
// # Pixel Formats
//
// Pixmaps store premultiplied color in RGBA8888, RGB565, ARGB4444,
// Alpha8, or RGBAF16. Narrow formats can dither on store.
package kanvas

// Version is the current version of the library.
const Version = "0.1.0"
