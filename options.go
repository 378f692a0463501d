package drv2605x

import "github.com/stargazing-dino/drv2605x/drv2605l"

// An Option configures a device.
type Option func(d *Device) Option

// OnBus can be used to specify the I²C bus name
// ("/dev/i2c-2", "I2C2", "2"). By default, the bus name is "", which selects
// the first available bus.
func OnBus(name string) Option {
	return func(d *Device) Option {
		old := d.bus
		d.bus = name
		return OnBus(old)
	}
}

// OnAddr can be used to specify an alternative I²C address.
// By default, the address is 0x5A.
func OnAddr(addr uint16) Option {
	return func(d *Device) Option {
		old := d.addr
		d.addr = addr
		return OnAddr(old)
	}
}

// WithMotor selects the motor type the device is initialized for. By
// default, an LRA motor is assumed.
func WithMotor(m drv2605l.MotorType) Option {
	return func(d *Device) Option {
		old := d.motor
		d.motor = m
		return WithMotor(old)
	}
}
