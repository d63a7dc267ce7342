package draw

import (
	"image"
	"image/color"
)

// Line draws a line between two points, both inclusive.
//
// This is the integer Bresenham algorithm with a single running error term;
// the plotted pixels are stable and shared by every other shape.
func Line(dst Image, a, b image.Point, c color.Color) {
	var (
		dx  = abs(b.X - a.X)
		dy  = abs(b.Y - a.Y)
		sx  = -1
		sy  = -1
		err = dx - dy
		x   = a.X
		y   = a.Y
	)
	if a.X < b.X {
		sx = 1
	}
	if a.Y < b.Y {
		sy = 1
	}

	for {
		dst.Set(x, y, c)
		if x == b.X && y == b.Y {
			return
		}

		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// HorizontalLine draws a line between (x0,y) and (x1,y), both inclusive.
func HorizontalLine(dst Image, x0, x1, y int, c color.Color) {
	for x := x0; x <= x1; x++ {
		dst.Set(x, y, c)
	}
}

// VerticalLine draws a line between (x,y0) and (x,y1), both inclusive.
func VerticalLine(dst Image, x, y0, y1 int, c color.Color) {
	for y := y0; y <= y1; y++ {
		dst.Set(x, y, c)
	}
}

// Rectangle draws the 1 pixel border of rect.
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	if rect.Empty() {
		return
	}
	for x := rect.Min.X; x < rect.Max.X; x++ {
		dst.Set(x, rect.Min.Y, c)
		dst.Set(x, rect.Max.Y-1, c)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		dst.Set(rect.Min.X, y, c)
		dst.Set(rect.Max.X-1, y, c)
	}
}

// Box draws a filled rectangle: the border followed by the interior.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	Rectangle(dst, rect, c)
	for x := rect.Min.X + 1; x < rect.Max.X-1; x++ {
		for y := rect.Min.Y + 1; y < rect.Max.Y-1; y++ {
			dst.Set(x, y, c)
		}
	}
}

// Bitstrip draws a cell of vertical 8-pixel strips with its top left corner at (x,y).
//
// Strip i is column x+i; bit j of a strip is row y+j. Set bits are drawn with on,
// clear bits with off, so the whole cell is overwritten.
func Bitstrip(dst Image, x, y int, strips []byte, on, off color.Color) {
	for i, strip := range strips {
		for j := 0; j < 8; j++ {
			if strip&(1<<uint(j)) != 0 {
				dst.Set(x+i, y+j, on)
			} else {
				dst.Set(x+i, y+j, off)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
