// Package ssd1306 is a driver for page-addressed monochrome OLED panels
// driven by a Solomon Systech SSD1306 controller.
//
// A [Device] keeps a framebuffer in memory. Drawing calls only change that
// framebuffer; [Device.Flush] transfers it to the panel. Nothing is sent
// implicitly.
//
// A Device is not safe for concurrent use. Callers drawing from more than one
// goroutine must serialize access themselves.
package ssd1306

import (
	"errors"
	"os"

	"github.com/d2r2/go-logger"
)

var debug = os.Getenv("DISPLAY_DEBUG") != ""

var lg = logger.NewPackageLogger("ssd1306", logLevel())

func logLevel() logger.LogLevel {
	if debug {
		return logger.DebugLevel
	}
	return logger.InfoLevel
}

// Errors
var (
	// ErrAllocation is returned when a framebuffer can not be allocated for the requested geometry.
	ErrAllocation = errors.New("ssd1306: can not allocate framebuffer")

	// ErrTransport is returned when a bus transaction did not complete.
	ErrTransport = errors.New("ssd1306: transport failure")

	// ErrOutOfRange is returned for coordinates, sizes or table indices outside of the valid range.
	ErrOutOfRange = errors.New("ssd1306: out of range")
)

// Bus is the blocking transport used to reach the panel.
//
// Tx writes w to the device at addr and returns once the transfer completed.
// The driver never reads, so r is always nil. A periph.io i2c.Bus satisfies
// this interface.
type Bus interface {
	Tx(addr uint16, w, r []byte) error
}

// Config is the display configuration.
type Config struct {
	// Width of the display in pixels.
	Width int

	// Height of the display in pixels, a multiple of 8.
	Height int

	// ExternalVCC is set if the panel voltage is supplied externally. The
	// internal charge pump is enabled either way.
	ExternalVCC bool

	// Addr is the bus address of the controller.
	Addr uint8
}

// DefaultConfig is used for a nil configuration; zero fields of other
// configurations are taken from it as well.
var DefaultConfig = Config{
	Width:  128,
	Height: 64,
	Addr:   0x3c,
}
