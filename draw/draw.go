// Package draw contains unchecked raster primitives for [image/draw.Image] targets.
//
// Pixels outside of the destination are handled by the destination itself;
// callers that need strict bounds must validate coordinates first.
package draw

import (
	"image"
	"image/draw"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Op is an alias for image/draw.Op
type Op = draw.Op

const (
	// Over specifies ``(src in mask) over dst''.
	Over Op = iota

	// Src specifies ``src in mask''.
	Src
)

// Draw aligns r.Min in dst with sp in src and then replaces the rectangle r in dst with the
// result of a Porter-Duff composition.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	draw.Draw(dst, r, src, sp, op)
}
