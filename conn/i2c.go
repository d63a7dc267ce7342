// Package conn contains the bus transports used to reach a display.
package conn

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/d2r2/go-logger"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
)

var debug = os.Getenv("DISPLAY_DEBUG") != ""

var lg = logger.NewPackageLogger("conn", logLevel())

func logLevel() logger.LogLevel {
	if debug {
		return logger.DebugLevel
	}
	return logger.InfoLevel
}

// I2C is a periph.io I²C bus.
type I2C struct {
	bus i2c.Bus
}

// OpenI2C opens the numbered I²C bus, use -1 to open the first available bus.
//
// The periph.io host drivers must be loaded before, see host.Init.
func OpenI2C(device int) (*I2C, error) {
	var (
		bus i2c.BusCloser
		err error
	)
	if device < 0 {
		bus, err = i2creg.Open("")
	} else {
		bus, err = i2creg.Open(strconv.FormatInt(int64(device), 10))
	}
	if err != nil {
		return nil, err
	}

	return NewI2C(bus), nil
}

// NewI2C uses an already opened bus.
func NewI2C(bus i2c.Bus) *I2C {
	return &I2C{bus: bus}
}

func (c *I2C) String() string {
	return fmt.Sprintf("I²C bus %s", c.bus)
}

// Close the bus, if it can be closed.
func (c *I2C) Close() error {
	if closer, ok := c.bus.(i2c.BusCloser); ok {
		return closer.Close()
	}
	return nil
}

// SetSpeed changes the bus clock.
func (c *I2C) SetSpeed(f physic.Frequency) error {
	return c.bus.SetSpeed(f)
}

// Tx does a blocking transaction with the device at addr.
func (c *I2C) Tx(addr uint16, w, r []byte) error {
	lg.Debugf("tx %#02x: write %d bytes [%s]", addr, len(w), trace(w))
	return c.bus.Tx(addr, w, r)
}

// trace formats at most the first 16 bytes of p.
func trace(p []byte) string {
	if len(p) > 16 {
		return hex.EncodeToString(p[:16]) + "..."
	}
	return hex.EncodeToString(p)
}
