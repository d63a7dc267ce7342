package ssd1306

import (
	"errors"
	"fmt"

	"github.com/BeatGlow/ssd1306/pixel"
)

const (
	maxWidth  = 256
	maxHeight = 256
)

// Device is one SSD1306 panel and its framebuffer.
type Device struct {
	bus         Bus
	addr        uint16
	width       int
	height      int
	pages       int
	externalVCC bool
	halted      bool

	// buf is the data transaction: the data marker followed by the packed pixels.
	buf []byte
	img *pixel.MonoPageImage
}

// New allocates the framebuffer for a panel reachable over bus. The bus is
// borrowed; closing it remains the responsibility of the caller.
//
// New does not talk to the panel, call [Device.Configure] before the first
// [Device.Flush].
func New(bus Bus, config *Config) (*Device, error) {
	if bus == nil {
		return nil, errors.New("ssd1306: bus is nil")
	}

	c := DefaultConfig
	if config != nil {
		c = *config
		if c.Width == 0 {
			c.Width = DefaultConfig.Width
		}
		if c.Height == 0 {
			c.Height = DefaultConfig.Height
		}
		if c.Addr == 0 {
			c.Addr = DefaultConfig.Addr
		}
	}

	switch {
	case c.Width < 0 || c.Width > maxWidth:
		return nil, fmt.Errorf("%w: width %d not in 1..%d", ErrAllocation, c.Width, maxWidth)
	case c.Height < 0 || c.Height > maxHeight:
		return nil, fmt.Errorf("%w: height %d not in 8..%d", ErrAllocation, c.Height, maxHeight)
	case c.Height%8 != 0:
		return nil, fmt.Errorf("%w: height %d is not a multiple of 8", ErrAllocation, c.Height)
	}

	d := &Device{
		bus:         bus,
		addr:        uint16(c.Addr),
		width:       c.Width,
		height:      c.Height,
		pages:       c.Height / 8,
		externalVCC: c.ExternalVCC,
	}
	d.buf = make([]byte, d.pages*d.width+1)
	d.buf[0] = dataMarker
	d.img = pixel.MonoPageImageOf(d.width, d.height, d.buf[1:])

	lg.Debugf("allocated %d byte framebuffer for %s", len(d.buf), d)
	return d, nil
}

func (d *Device) String() string {
	return fmt.Sprintf("SSD1306 OLED %dx%d at %#02x", d.width, d.height, d.addr)
}

// Width of the panel in pixels.
func (d *Device) Width() int { return d.width }

// Height of the panel in pixels.
func (d *Device) Height() int { return d.height }

// ExternalVCC reports if the panel was configured for an external supply.
func (d *Device) ExternalVCC() bool { return d.externalVCC }

// Pages is the number of 8-row bands in the framebuffer.
func (d *Device) Pages() int { return d.pages }

// Command sends a command byte followed by its arguments. Each byte goes out
// in its own command transaction; sending stops at the first failure.
func (d *Device) Command(cmnd byte, args ...byte) error {
	if err := d.send(cmnd); err != nil {
		return err
	}
	for _, arg := range args {
		if err := d.send(arg); err != nil {
			return err
		}
	}
	return nil
}

func (d *Device) send(b byte) error {
	if err := d.bus.Tx(d.addr, []byte{commandMarker, b}, nil); err != nil {
		return fmt.Errorf("ssd1306: command %#02x: %w: %w", b, ErrTransport, err)
	}
	return nil
}

// Configure brings the panel from reset into a displaying state.
//
// The sequence is replayed in a fixed order and aborts on the first failed
// transaction, in which case the panel is left partially configured.
func (d *Device) Configure() error {
	sequence := d.initSequence()
	for i, b := range sequence {
		if err := d.send(b); err != nil {
			lg.Errorf("configure failed at step %d of %d: %v", i+1, len(sequence), err)
			return fmt.Errorf("ssd1306: configure step %d of %d: %w", i+1, len(sequence), err)
		}
	}
	d.halted = false
	lg.Infof("configured %s", d)
	return nil
}

func (d *Device) initSequence() []byte {
	return []byte{
		setDisplayOff,
		setMemoryMode, memoryModeVertical,
		setStartLine,
		setSegmentRemap,
		setMultiplexRatio, byte(d.height - 1),
		setComScanDec,
		setDisplayOffset, 0x00,
		setComPins, d.comPins(),
		setDisplayClockDiv, clockDivDefault,
		setPrecharge, prechargePeriod,
		setVComDetect, vcomDeselectLevel,
		setContrast, contrastMax,
		setDisplayAllOnResume,
		setNormalDisplay,
		setChargePump, chargePumpOn,
		setDisplayOn,
	}
}

func (d *Device) comPins() byte {
	if d.height <= 32 {
		return comPinsSequential
	}
	return comPinsAlternative
}

// Flush transfers the whole framebuffer to the panel.
func (d *Device) Flush() (err error) {
	if err = d.Command(setColumnAddr, 0, byte(d.width-1)); err != nil {
		return
	}
	if err = d.Command(setPageAddr, 0, byte(d.pages-1)); err != nil {
		return
	}
	if err = d.bus.Tx(d.addr, d.buf, nil); err != nil {
		return fmt.Errorf("ssd1306: flush %d bytes: %w: %w", len(d.buf), ErrTransport, err)
	}
	return
}

// Show toggles the display on or off. The framebuffer is kept.
func (d *Device) Show(show bool) error {
	if show {
		return d.Command(setDisplayOn)
	}
	return d.Command(setDisplayOff)
}

// SetContrast adjusts the contrast level.
func (d *Device) SetContrast(level uint8) error {
	return d.Command(setContrast, level)
}

// Invert toggles inverted display polarity.
func (d *Device) Invert(invert bool) error {
	if invert {
		return d.Command(setInvertDisplay)
	}
	return d.Command(setNormalDisplay)
}

// Close switches the panel off. The bus is not closed.
func (d *Device) Close() error {
	if !d.halted {
		if err := d.Show(false); err != nil {
			return err
		}
		d.halted = true
	}
	return nil
}
