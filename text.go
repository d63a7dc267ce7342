package ssd1306

import (
	"errors"
	"fmt"
	"image"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/BeatGlow/ssd1306/draw"
	"github.com/BeatGlow/ssd1306/glyph"
	"github.com/BeatGlow/ssd1306/pixel"
)

// DrawChar draws the 8×8 glyph for c with its top left corner at (x, y).
// The whole cell is overwritten, characters without a glyph draw a blank cell.
func (d *Device) DrawChar(c rune, x, y int) error {
	strips, _ := glyph.Lookup(glyph.Font, glyph.Index(c))
	return d.drawCell(strips, x, y)
}

// DrawIcon draws the 8×8 icon id with its top left corner at (x, y).
func (d *Device) DrawIcon(id, x, y int) error {
	strips, ok := glyph.Icon(id)
	if !ok {
		return fmt.Errorf("%w: icon %d", ErrOutOfRange, id)
	}
	return d.drawCell(strips, x, y)
}

func (d *Device) drawCell(strips []byte, x, y int) error {
	if err := d.checkRect(image.Rect(x, y, x+glyph.Size, y+glyph.Size)); err != nil {
		return err
	}
	draw.Bitstrip(d.img, x, y, strips, pixel.On, pixel.Off)
	return nil
}

// DrawString draws text starting with its first glyph at (x, y).
//
// Glyphs advance 8 pixels to the right. A glyph that would not fit in the
// remaining columns moves to the start of the next text line, 8 pixels down.
// Text stops without an error once the next line would start at or below
// height-8; the characters left are dropped.
func (d *Device) DrawString(text string, x, y int) error {
	for _, c := range text {
		if err := d.DrawChar(c, x, y); err != nil {
			return err
		}
		x += glyph.Size
		if x+glyph.Size > d.width {
			x = 0
			y += glyph.Size
		}
		if y+glyph.Size >= d.height {
			break
		}
	}
	return nil
}

// DrawText renders text with an arbitrary font face. The dot is the start of
// the baseline; pixels outside of the display are clipped.
func (d *Device) DrawText(face font.Face, text string, dot image.Point) error {
	if face == nil {
		return errors.New("ssd1306: font face is nil")
	}
	drawer := font.Drawer{
		Dst:  d.img,
		Src:  image.NewUniform(pixel.On),
		Face: face,
		Dot:  fixed.P(dot.X, dot.Y),
	}
	drawer.DrawString(text)
	return nil
}

// LoadFace parses TrueType font data into a face of size points at 72 DPI,
// so one point is one pixel.
func LoadFace(ttf []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("ssd1306: parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
