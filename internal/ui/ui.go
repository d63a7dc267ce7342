// Package ui runs the demo panel: two status LEDs toggled by buttons and a
// digit echoed from the keyboard.
//
// Inputs arrive as events on a channel and are handled one at a time by a
// single goroutine, which is the only one touching the display.
package ui

import (
	"context"
	"fmt"

	"github.com/d2r2/go-logger"
	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/ssd1306/glyph"
)

var lg = logger.NewPackageLogger("ui", logger.InfoLevel)

// Screen positions.
const (
	greetingX, greetingY = 8, 10
	digitX, digitY       = 64, 23
	greenX, greenY       = 8, 48
	blueX, blueY         = 80, 48
	iconX, iconY         = 58, 48
)

// Canvas is the display surface.
type Canvas interface {
	Clear()
	DrawString(text string, x, y int) error
	DrawChar(c rune, x, y int) error
	DrawIcon(id, x, y int) error
	Flush() error
}

// LED is a status light; a periph.io gpio.PinOut satisfies it.
type LED interface {
	Out(gpio.Level) error
}

// Kind of input event.
type Kind int

const (
	ButtonA Kind = iota // toggles the green LED
	ButtonB             // toggles the blue LED
	Key                 // a character typed on the console
)

func (k Kind) String() string {
	switch k {
	case ButtonA:
		return "button A"
	case ButtonB:
		return "button B"
	case Key:
		return "key"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is one input.
type Event struct {
	Kind Kind
	Key  rune
}

// State is what the panel currently shows.
type State struct {
	Green bool
	Blue  bool

	// Digit is the last digit typed, -1 if none.
	Digit int
}

// Panel owns the canvas and the LEDs.
type Panel struct {
	canvas Canvas
	green  LED
	blue   LED
	state  State
}

// New panel. The LEDs may be nil.
func New(canvas Canvas, green, blue LED) *Panel {
	return &Panel{
		canvas: canvas,
		green:  green,
		blue:   blue,
		state:  State{Digit: -1},
	}
}

// State returns a copy of the current state.
func (p *Panel) State() State {
	return p.state
}

// Start clears the display and draws the initial screen.
func (p *Panel) Start() error {
	p.canvas.Clear()
	if err := p.canvas.Flush(); err != nil {
		return err
	}
	if err := p.canvas.DrawString("Type a digit", greetingX, greetingY); err != nil {
		return err
	}
	if err := p.drawStatus(); err != nil {
		return err
	}
	return p.canvas.Flush()
}

// Run handles events until the channel is closed or ctx is done. A failed
// display update ends the loop.
func (p *Panel) Run(ctx context.Context, events <-chan Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := p.Handle(ev); err != nil {
				return err
			}
		}
	}
}

// Handle one event and flush the display.
func (p *Panel) Handle(ev Event) error {
	switch ev.Kind {
	case ButtonA:
		p.state.Green = !p.state.Green
		lg.Infof("green LED %s", onOff(p.state.Green))
		if err := setLED(p.green, p.state.Green); err != nil {
			return err
		}
		if err := p.drawStatus(); err != nil {
			return err
		}

	case ButtonB:
		p.state.Blue = !p.state.Blue
		lg.Infof("blue LED %s", onOff(p.state.Blue))
		if err := setLED(p.blue, p.state.Blue); err != nil {
			return err
		}
		if err := p.drawStatus(); err != nil {
			return err
		}

	case Key:
		if ev.Key < '0' || ev.Key > '9' {
			lg.Debugf("ignoring key %q", ev.Key)
			return nil
		}
		// Blank the previous digit first, the panel shows it while the new one is drawn.
		if err := p.canvas.DrawChar(' ', digitX, digitY); err != nil {
			return err
		}
		if err := p.canvas.Flush(); err != nil {
			return err
		}
		if err := p.canvas.DrawChar(ev.Key, digitX, digitY); err != nil {
			return err
		}
		p.state.Digit = int(ev.Key - '0')

	default:
		return fmt.Errorf("ui: unknown event %s", ev.Kind)
	}
	return p.canvas.Flush()
}

func (p *Panel) drawStatus() error {
	green, blue := "G OFF", "B OFF"
	if p.state.Green {
		green = "G ON "
	}
	if p.state.Blue {
		blue = "B ON "
	}
	if err := p.canvas.DrawString(green, greenX, greenY); err != nil {
		return err
	}
	if err := p.canvas.DrawString(blue, blueX, blueY); err != nil {
		return err
	}

	icon := glyph.IconEmpty
	switch {
	case p.state.Green && p.state.Blue:
		icon = glyph.IconFull
	case p.state.Green || p.state.Blue:
		icon = glyph.IconHalf
	}
	return p.canvas.DrawIcon(icon, iconX, iconY)
}

func setLED(led LED, on bool) error {
	if led == nil {
		return nil
	}
	return led.Out(gpio.Level(on))
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
