package drv2605l

import (
	"fmt"

	"periph.io/x/periph/conn/i2c"
	"tinygo.org/x/drivers"
)

// Transport is the addressed byte-level access the driver needs from a bus.
// Both adapters below satisfy it; every register access in this package goes
// through exactly one of these two operations.
type Transport interface {
	ReadRegister(reg byte) (byte, error)
	WriteRegister(reg, val byte) error
}

// periphDev adapts a periph.io i2c.Dev.
type periphDev struct {
	dev *i2c.Dev
}

func (p *periphDev) ReadRegister(reg byte) (byte, error) {
	b := make([]byte, 1)
	if err := p.dev.Tx([]byte{reg}, b); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (p *periphDev) WriteRegister(reg, val byte) error {
	n, err := p.dev.Write([]byte{reg, val})
	if err != nil {
		return err
	}
	n-- // remove register write
	if n != 1 {
		return fmt.Errorf("write: wrong number of bytes written: want %d, got %d", 1, n)
	}
	return nil
}

// i2cDev adapts a tinygo.org/x/drivers I2C bus, for use under TinyGo
// firmware where periph is unavailable. The bus must already be configured.
type i2cDev struct {
	bus  drivers.I2C
	addr uint16
}

func (t *i2cDev) ReadRegister(reg byte) (byte, error) {
	b := make([]byte, 1)
	if err := t.bus.Tx(t.addr, []byte{reg}, b); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (t *i2cDev) WriteRegister(reg, val byte) error {
	return t.bus.Tx(t.addr, []byte{reg, val}, nil)
}
