package ssd1306

import (
	"fmt"

	"periph.io/x/conn/v3/physic"

	"github.com/BeatGlow/ssd1306/conn"
)

// BusCloser is a Bus that owns its underlying resources.
type BusCloser interface {
	Bus
	fmt.Stringer

	// Close the bus.
	Close() error
}

// I2CConfig describes the I²C bus configuration.
type I2CConfig struct {
	// Device is the I²C bus number, use -1 to use the first available bus.
	Device int

	// Speed is the bus clock, zero leaves the clock unchanged.
	Speed physic.Frequency

	// Sysfs selects the Linux /dev/i2c-N transport instead of periph.io. It
	// binds to Addr and needs an explicit Device.
	Sysfs bool

	// Addr is the I²C address used by the Sysfs transport.
	Addr uint8
}

// DefaultI2CConfig are the default configuration values.
var DefaultI2CConfig = I2CConfig{
	Device: -1,
	Speed:  400 * physic.KiloHertz,
	Addr:   0x3c,
}

// OpenI2C opens an I²C transport for use with [New].
func OpenI2C(config *I2CConfig) (BusCloser, error) {
	if config == nil {
		config = new(I2CConfig)
		*config = DefaultI2CConfig
	}

	if config.Sysfs {
		if config.Device < 0 {
			return nil, fmt.Errorf("ssd1306: sysfs transport needs a bus number, got %d", config.Device)
		}
		c, err := conn.OpenSysfs(config.Device, config.Addr)
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	c, err := conn.OpenI2C(config.Device)
	if err != nil {
		return nil, err
	}
	if config.Speed > 0 {
		if err = c.SetSpeed(config.Speed); err != nil {
			_ = c.Close()
			return nil, err
		}
	}
	return c, nil
}
