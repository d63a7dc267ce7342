package glyph

import "testing"

func TestIndex(t *testing.T) {
	tests := []struct {
		c    rune
		want int
	}{
		{'A', 88},
		{'Z', 288},
		{'0', 8},
		{'9', 80},
		{'a', 296},
		{'z', 496},
		{' ', 0},
		{'!', 0},
		{'é', 0},
	}
	for _, test := range tests {
		t.Run(string(test.c), func(it *testing.T) {
			if v := Index(test.c); v != test.want {
				it.Errorf("expected index %d, got %d", test.want, v)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	for _, c := range "09AZaz" {
		if !Supported(c) {
			t.Errorf("expected %q to be supported", c)
		}
	}
	for _, c := range " -?\x00" {
		if Supported(c) {
			t.Errorf("expected %q to be unsupported", c)
		}
	}
}

func TestFont(t *testing.T) {
	if v := len(Font); v != slots*Size {
		t.Fatalf("expected font table of %d bytes, got %d", slots*Size, v)
	}

	blank, ok := Lookup(Font, Index(' '))
	if !ok {
		t.Fatal("expected blank glyph")
	}
	for i, strip := range blank {
		if strip != 0 {
			t.Errorf("expected blank strip %d, got %#02x", i, strip)
		}
	}

	for _, c := range "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz" {
		strips, ok := Lookup(Font, Index(c))
		if !ok {
			t.Fatalf("expected glyph for %q", c)
		}
		var lit int
		for _, strip := range strips {
			if strip != 0 {
				lit++
			}
		}
		if lit == 0 {
			t.Errorf("expected glyph %q to have pixels", c)
		}
	}
}

func TestFontColumns(t *testing.T) {
	// The 'I' glyph has a single full height stem in columns 2 and 3.
	strips, _ := Lookup(Font, Index('I'))
	want := []byte{0x00, 0x41, 0x7f, 0x7f, 0x41, 0x00, 0x00, 0x00}
	for i := range want {
		if strips[i] != want[i] {
			t.Errorf("expected strip %d to be %#02x, got %#02x", i, want[i], strips[i])
		}
	}
}

func TestLookup(t *testing.T) {
	table := make([]byte, 3*Size)
	for _, index := range []int{0, Size, 2 * Size} {
		if _, ok := Lookup(table, index); !ok {
			t.Errorf("expected index %d to resolve", index)
		}
	}
	for _, index := range []int{-1, 2*Size + 1, 3 * Size} {
		if _, ok := Lookup(table, index); ok {
			t.Errorf("expected index %d to be out of range", index)
		}
	}
}

func TestIcon(t *testing.T) {
	for _, id := range []int{IconFull, IconHalf, IconEmpty} {
		if _, ok := Icon(id); !ok {
			t.Errorf("expected icon %d", id)
		}
	}
	for _, id := range []int{-1, 3, 100} {
		if _, ok := Icon(id); ok {
			t.Errorf("expected icon %d to be out of range", id)
		}
	}

	full, _ := Icon(IconFull)
	if full[3] != 0xff {
		t.Errorf("expected center strip of full icon to be %#02x, got %#02x", 0xff, full[3])
	}
}
