package ssd1306

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func testLit(d *Device) map[image.Point]bool {
	lit := make(map[image.Point]bool)
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			if on, _ := d.Pixel(x, y); on {
				lit[image.Pt(x, y)] = true
			}
		}
	}
	return lit
}

func testExactly(t *testing.T, d *Device, want ...image.Point) {
	t.Helper()
	lit := testLit(d)
	if len(lit) != len(want) {
		t.Errorf("expected %d pixels, got %d", len(want), len(lit))
	}
	for _, p := range want {
		if !lit[p] {
			t.Errorf("expected pixel %s to be on", p)
		}
	}
}

func TestSetPixelAddress(t *testing.T) {
	d, _ := testDevice(t, nil)
	for _, p := range []image.Point{
		{0, 0}, {0, 7}, {0, 8}, {1, 0}, {5, 13}, {127, 0}, {0, 63}, {127, 63}, {64, 31},
	} {
		d.Clear()
		before := append([]byte(nil), d.buf...)
		if err := d.SetPixel(p.X, p.Y, true); err != nil {
			t.Fatal(err)
		}

		index := 1 + p.Y/8 + p.X*d.pages
		for i := range d.buf {
			want := before[i]
			if i == index {
				want |= 1 << uint(p.Y%8)
			}
			if d.buf[i] != want {
				t.Fatalf("pixel %s: expected byte %d to be %#02x, got %#02x", p, i, want, d.buf[i])
			}
		}
	}
}

func TestSetPixelToggle(t *testing.T) {
	d, _ := testDevice(t, &Config{Width: 16, Height: 16})
	d.Fill(true)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if err := d.SetPixel(x, y, false); err != nil {
				t.Fatal(err)
			}
			if on, _ := d.Pixel(x, y); on {
				t.Fatalf("expected pixel (%d,%d) to be off", x, y)
			}
			if err := d.SetPixel(x, y, true); err != nil {
				t.Fatal(err)
			}
			if on, _ := d.Pixel(x, y); !on {
				t.Fatalf("expected pixel (%d,%d) to be on", x, y)
			}
			if v := len(testLit(d)); v != 16*16 {
				t.Fatalf("expected neighbours to be untouched, %d pixels on", v)
			}
		}
	}
}

func TestSetPixelOutOfRange(t *testing.T) {
	d, _ := testDevice(t, nil)
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {128, 0}, {0, 64}, {1000, 1000}} {
		if err := d.SetPixel(p.X, p.Y, true); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("pixel %s: expected %v, got %v", p, ErrOutOfRange, err)
		}
		if _, err := d.Pixel(p.X, p.Y); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("pixel %s: expected %v reading, got %v", p, ErrOutOfRange, err)
		}
	}
	if d.buf[0] != dataMarker {
		t.Errorf("expected data marker to be untouched, got %#02x", d.buf[0])
	}
	if v := len(testLit(d)); v != 0 {
		t.Errorf("expected no pixels on, got %d", v)
	}
}

func TestFill(t *testing.T) {
	d, _ := testDevice(t, nil)
	initial := append([]byte(nil), d.buf...)

	d.Fill(true)
	if d.buf[0] != dataMarker {
		t.Errorf("expected data marker to be untouched, got %#02x", d.buf[0])
	}
	for i, b := range d.buf[1:] {
		if b != 0xff {
			t.Fatalf("expected byte %d to be %#02x, got %#02x", i+1, 0xff, b)
		}
	}

	d.Fill(false)
	if !bytes.Equal(d.buf, initial) {
		t.Error("expected buffer to be restored to its initial state")
	}
}

func TestRect(t *testing.T) {
	d, _ := testDevice(t, nil)
	if err := d.Rect(0, 0, 5, 5, true, false); err != nil {
		t.Fatal(err)
	}
	lit := testLit(d)
	if len(lit) != 16 {
		t.Errorf("expected 16 border pixels, got %d", len(lit))
	}
	for y := 1; y < 4; y++ {
		for x := 1; x < 4; x++ {
			if lit[image.Pt(x, y)] {
				t.Errorf("expected interior pixel (%d,%d) to be off", x, y)
			}
		}
	}

	if err := d.Rect(0, 0, 5, 5, true, true); err != nil {
		t.Fatal(err)
	}
	if v := len(testLit(d)); v != 25 {
		t.Errorf("expected 25 pixels for a filled rectangle, got %d", v)
	}

	if err := d.Rect(1, 1, 3, 3, false, true); err != nil {
		t.Fatal(err)
	}
	if v := len(testLit(d)); v != 16 {
		t.Errorf("expected 16 pixels after clearing the interior, got %d", v)
	}
}

func TestRectPosition(t *testing.T) {
	d, _ := testDevice(t, nil)
	// top=2, left=10: rows 2..3, columns 10..12
	if err := d.Rect(2, 10, 3, 2, true, false); err != nil {
		t.Fatal(err)
	}
	testExactly(t, d, image.Pt(10, 2), image.Pt(11, 2), image.Pt(12, 2), image.Pt(10, 3), image.Pt(11, 3), image.Pt(12, 3))
}

func TestRectOutOfRange(t *testing.T) {
	d, _ := testDevice(t, nil)
	tests := []struct {
		name                     string
		top, left, width, height int
	}{
		{"zero width", 0, 0, 0, 5},
		{"zero height", 0, 0, 5, 0},
		{"negative width", 10, 10, -3, 5},
		{"negative top", -1, 0, 5, 5},
		{"past right edge", 0, 124, 5, 5},
		{"past bottom edge", 60, 0, 5, 5},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			if err := d.Rect(test.top, test.left, test.width, test.height, true, true); !errors.Is(err, ErrOutOfRange) {
				it.Errorf("expected %v, got %v", ErrOutOfRange, err)
			}
		})
	}
	if v := len(testLit(d)); v != 0 {
		t.Errorf("expected nothing drawn, got %d pixels", v)
	}

	if err := d.Rect(59, 123, 5, 5, true, false); err != nil {
		t.Errorf("expected rectangle touching the corner to fit, got %v", err)
	}
}

func TestLine(t *testing.T) {
	d, _ := testDevice(t, nil)
	if err := d.Line(0, 0, 7, 0, true); err != nil {
		t.Fatal(err)
	}
	testExactly(t, d,
		image.Pt(0, 0), image.Pt(1, 0), image.Pt(2, 0), image.Pt(3, 0),
		image.Pt(4, 0), image.Pt(5, 0), image.Pt(6, 0), image.Pt(7, 0),
	)

	d.Clear()
	if err := d.Line(0, 0, 3, 3, true); err != nil {
		t.Fatal(err)
	}
	testExactly(t, d, image.Pt(0, 0), image.Pt(1, 1), image.Pt(2, 2), image.Pt(3, 3))

	d.Clear()
	if err := d.Line(127, 63, 0, 0, true); err != nil {
		t.Fatal(err)
	}
	if v := len(testLit(d)); v != 128 {
		t.Errorf("expected a pixel per column, got %d", v)
	}
}

func TestLineOutOfRange(t *testing.T) {
	d, _ := testDevice(t, nil)
	if err := d.Line(0, 0, 128, 10, true); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected %v, got %v", ErrOutOfRange, err)
	}
	if err := d.Line(-1, 0, 10, 10, true); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected %v, got %v", ErrOutOfRange, err)
	}
	if v := len(testLit(d)); v != 0 {
		t.Errorf("expected nothing drawn, got %d pixels", v)
	}
}

func TestHLineVLine(t *testing.T) {
	d, _ := testDevice(t, nil)
	if err := d.HLine(5, 3, 10, true); err != nil {
		t.Fatal(err)
	}
	if err := d.VLine(20, 2, 4, true); err != nil {
		t.Fatal(err)
	}
	testExactly(t, d,
		image.Pt(3, 10), image.Pt(4, 10), image.Pt(5, 10),
		image.Pt(20, 2), image.Pt(20, 3), image.Pt(20, 4),
	)

	if err := d.HLine(0, 128, 0, true); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected %v, got %v", ErrOutOfRange, err)
	}
	if err := d.VLine(0, -2, 3, true); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected %v, got %v", ErrOutOfRange, err)
	}
}

func TestDrawImage(t *testing.T) {
	d, _ := testDevice(t, &Config{Width: 16, Height: 8})
	if err := d.DrawImage(image.Rect(2, 1, 4, 3), image.NewUniform(color.White), image.Point{}); err != nil {
		t.Fatal(err)
	}
	testExactly(t, d, image.Pt(2, 1), image.Pt(3, 1), image.Pt(2, 2), image.Pt(3, 2))

	if err := d.DrawImage(image.Rect(0, 0, 17, 8), image.NewUniform(color.White), image.Point{}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected %v, got %v", ErrOutOfRange, err)
	}
}

func TestImageInterface(t *testing.T) {
	d, _ := testDevice(t, nil)
	if v := d.Bounds(); v != image.Rect(0, 0, 128, 64) {
		t.Errorf("expected bounds %s, got %s", image.Rect(0, 0, 128, 64), v)
	}
	d.Set(3, 4, color.White)
	d.Set(-3, 400, color.White)
	if on, _ := d.Pixel(3, 4); !on {
		t.Error("expected pixel (3,4) to be on")
	}
	if v := d.At(-3, 400); v != color.Transparent {
		t.Errorf("expected transparent outside the display, got %v", v)
	}
	if v := len(testLit(d)); v != 1 {
		t.Errorf("expected 1 pixel on, got %d", v)
	}
}
