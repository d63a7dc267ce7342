package ssd1306

import (
	"fmt"
	"image"
	"image/color"

	"github.com/BeatGlow/ssd1306/draw"
	"github.com/BeatGlow/ssd1306/pixel"
)

func (d *Device) checkPoint(x, y int) error {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return fmt.Errorf("%w: pixel (%d,%d) outside %dx%d", ErrOutOfRange, x, y, d.width, d.height)
	}
	return nil
}

func (d *Device) checkRect(r image.Rectangle) error {
	if r.Empty() || !r.In(d.img.Rect) {
		return fmt.Errorf("%w: rectangle %s outside %s", ErrOutOfRange, r, d.img.Rect)
	}
	return nil
}

// SetPixel turns the pixel at (x, y) on or off.
func (d *Device) SetPixel(x, y int, on bool) error {
	if err := d.checkPoint(x, y); err != nil {
		return err
	}
	d.img.Set(x, y, pixel.Mono{On: on})
	return nil
}

// Pixel reports if the pixel at (x, y) is on.
func (d *Device) Pixel(x, y int) (bool, error) {
	if err := d.checkPoint(x, y); err != nil {
		return false, err
	}
	return d.img.At(x, y).(pixel.Mono).On, nil
}

// Fill sets every pixel.
func (d *Device) Fill(on bool) {
	c := pixel.Mono{On: on}
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			d.img.Set(x, y, c)
		}
	}
}

// Clear turns every pixel off.
func (d *Device) Clear() {
	d.Fill(false)
}

// Rect draws the border of the rectangle with its top left corner at
// (left, top). If filled is set, the interior is drawn as well.
//
// The rectangle must be at least 1 pixel wide and high and lie completely
// inside the display, nothing is drawn otherwise.
func (d *Device) Rect(top, left, width, height int, on, filled bool) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: rectangle size %dx%d", ErrOutOfRange, width, height)
	}
	r := image.Rect(left, top, left+width, top+height)
	if err := d.checkRect(r); err != nil {
		return err
	}
	if filled {
		draw.Box(d.img, r, pixel.Mono{On: on})
	} else {
		draw.Rectangle(d.img, r, pixel.Mono{On: on})
	}
	return nil
}

// Line draws a line between (x0, y0) and (x1, y1), both inclusive.
func (d *Device) Line(x0, y0, x1, y1 int, on bool) error {
	if err := d.checkPoint(x0, y0); err != nil {
		return err
	}
	if err := d.checkPoint(x1, y1); err != nil {
		return err
	}
	draw.Line(d.img, image.Pt(x0, y0), image.Pt(x1, y1), pixel.Mono{On: on})
	return nil
}

// HLine draws a horizontal line from x0 to x1 on row y; the bounds are
// inclusive and may be given in either order.
func (d *Device) HLine(x0, x1, y int, on bool) error {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if err := d.checkPoint(x0, y); err != nil {
		return err
	}
	if err := d.checkPoint(x1, y); err != nil {
		return err
	}
	draw.HorizontalLine(d.img, x0, x1, y, pixel.Mono{On: on})
	return nil
}

// VLine draws a vertical line from y0 to y1 in column x; the bounds are
// inclusive and may be given in either order.
func (d *Device) VLine(x, y0, y1 int, on bool) error {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if err := d.checkPoint(x, y0); err != nil {
		return err
	}
	if err := d.checkPoint(x, y1); err != nil {
		return err
	}
	draw.VerticalLine(d.img, x, y0, y1, pixel.Mono{On: on})
	return nil
}

// DrawImage draws src, aligned at sp, into the rectangle r of the display.
// Colors are reduced to on and off by luminance.
func (d *Device) DrawImage(r image.Rectangle, src image.Image, sp image.Point) error {
	if err := d.checkRect(r); err != nil {
		return err
	}
	draw.Draw(d.img, r, src, sp, draw.Src)
	return nil
}

// Bounds is the display bounding box.
func (d *Device) Bounds() image.Rectangle {
	return d.img.Bounds()
}

// ColorModel returns [pixel.MonoModel].
func (d *Device) ColorModel() color.Model {
	return pixel.MonoModel
}

// At returns the color of the pixel at (x, y), or [color.Transparent] outside the display.
func (d *Device) At(x, y int) color.Color {
	return d.img.At(x, y)
}

// Set the pixel color at (x, y). Pixels outside the display are ignored,
// use [Device.SetPixel] for checked access.
func (d *Device) Set(x, y int, c color.Color) {
	d.img.Set(x, y, c)
}
