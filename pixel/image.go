package pixel

import (
	"image"
	"image/color"
	"image/draw"
)

// Image is a drawable image that can be cleared and filled at once.
type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values of an image.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between horizontally adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

var _ Image = (*MonoPageImage)(nil)

// MonoPageImage is a 1-bit per pixel monochrome image laid out in pages.
//
// A page is a band of 8 rows. Every byte holds one column of a page with the
// least significant bit on top, and the pages of a column are stored next to
// each other. This is the order in which SSD1306 controllers consume display
// RAM in vertical addressing mode.
type MonoPageImage struct {
	Buffer
}

// Pages returns the number of 8-row bands needed for h rows.
func Pages(h int) int {
	return (h + 7) / 8
}

// NewMonoPageImage allocates a cleared w by h image.
func NewMonoPageImage(w, h int) *MonoPageImage {
	pages := Pages(h)
	return MonoPageImageOf(w, h, make([]byte, pages*w))
}

// MonoPageImageOf returns an image using pix as its pixel storage. The pix
// slice must hold at least w*Pages(h) bytes; it is not copied.
func MonoPageImageOf(w, h int, pix []byte) *MonoPageImage {
	pages := Pages(h)
	if len(pix) < pages*w {
		panic("pixel: buffer too small for image")
	}
	return &MonoPageImage{
		Buffer: Buffer{
			Rect:   image.Rect(0, 0, w, h),
			Pix:    pix[:pages*w],
			Stride: pages,
		},
	}
}

func (p *MonoPageImage) ColorModel() color.Model {
	return MonoModel
}

// PixOffset returns the index of the byte holding pixel (x, y) and the mask
// of its bit within that byte.
func (p *MonoPageImage) PixOffset(x, y int) (int, byte) {
	return x*p.Stride + y/8, byte(1) << uint(y&7)
}

func (p *MonoPageImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	pos, bit := p.PixOffset(x, y)
	return Mono{
		On: p.Pix[pos]&bit != 0,
	}
}

func (p *MonoPageImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	pos, bit := p.PixOffset(x, y)
	if monoModel(c).(Mono).On {
		p.Pix[pos] |= bit
	} else {
		p.Pix[pos] &^= bit
	}
}

func (p *MonoPageImage) Fill(c color.Color) {
	var value byte
	if monoModel(c).(Mono).On {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}
