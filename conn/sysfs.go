package conn

import (
	"fmt"
	"io"

	"github.com/d2r2/go-i2c"
	"github.com/d2r2/go-logger"
)

// Sysfs is a single device on a Linux /dev/i2c-N bus.
type Sysfs struct {
	dev    *i2c.I2C
	device int
	addr   uint8
}

// OpenSysfs opens the device at addr on /dev/i2c-device.
func OpenSysfs(device int, addr uint8) (*Sysfs, error) {
	if !debug {
		// go-i2c traces every transfer at debug level.
		_ = logger.ChangePackageLogLevel("i2c", logger.InfoLevel)
	}

	dev, err := i2c.NewI2C(addr, device)
	if err != nil {
		return nil, err
	}
	return &Sysfs{
		dev:    dev,
		device: device,
		addr:   addr,
	}, nil
}

func (c *Sysfs) String() string {
	return fmt.Sprintf("I²C /dev/i2c-%d device %#02x", c.device, c.addr)
}

// Close the device.
func (c *Sysfs) Close() error {
	return c.dev.Close()
}

// Tx does a blocking transaction. The device is bound to one address when
// opened, so addr has to match it.
func (c *Sysfs) Tx(addr uint16, w, r []byte) error {
	if addr != uint16(c.addr) {
		return fmt.Errorf("conn: device opened for address %#02x, got %#02x", c.addr, addr)
	}
	lg.Debugf("tx %#02x: write %d bytes [%s]", addr, len(w), trace(w))
	if len(w) > 0 {
		n, err := c.dev.WriteBytes(w)
		if err != nil {
			return err
		}
		if n != len(w) {
			return io.ErrShortWrite
		}
	}
	if len(r) > 0 {
		if _, err := c.dev.ReadBytes(r); err != nil {
			return err
		}
	}
	return nil
}
