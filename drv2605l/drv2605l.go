// Package drv2605l controls a TI DRV2605L haptic motor driver over I2C at
// the register level. The higher level package drv2605x builds effect and
// heartbeat playback on top of it.
package drv2605l

import (
	"errors"
	"fmt"

	"periph.io/x/periph/conn/i2c"
	"periph.io/x/periph/conn/i2c/i2creg"
	"periph.io/x/periph/host"
	"tinygo.org/x/drivers"
)

var (
	// ErrNotDevice throws an error when the device ID read from the status
	// register does not match a DRV2605L signature (0x07).
	ErrNotDevice error = errors.New("drv2605l: device ID does not match (0x07)")
)

// MotorType selects the actuator wired to the driver. It decides the
// feedback-control register bit and the waveform library chosen during Init.
type MotorType uint8

const (
	// LRA is a linear resonant actuator (default).
	LRA MotorType = iota
	// ERM is an eccentric rotating mass motor.
	ERM
)

// Device defines a DRV2605L device. It is exclusively owned by one caller;
// it is not safe for concurrent use.
type Device struct {
	t   Transport
	bus i2c.BusCloser

	motor   MotorType
	mode    byte
	modeSet bool
}

// New returns a new DRV2605L device on a periph.io I2C bus and initializes
// it, leaving it in internal-trigger mode ready to play effects.
//
// Argument "busName" can be used to specify the exact bus to use ("/dev/i2c-2",
// "I2C2", "2"). If it is the empty string "" the first available bus is used.
// Argument "addr" can be used to specify an alternative address if the default
// (0x5A) has been changed.
func New(busName string, addr uint16, opts ...Option) (*Device, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("drv2605l: could not initialize host: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("drv2605l: could not open I2C bus: %w", err)
	}

	if addr == 0 {
		addr = Addr
	}

	d, err := NewFromTransport(&periphDev{dev: &i2c.Dev{Addr: addr, Bus: bus}}, opts...)
	if err != nil {
		bus.Close()
		return nil, err
	}
	d.bus = bus

	return d, nil
}

// NewI2C returns a new DRV2605L device on a tinygo.org/x/drivers I2C bus,
// for use under TinyGo firmware. The bus must already be configured.
func NewI2C(bus drivers.I2C, addr uint16, opts ...Option) (*Device, error) {
	if addr == 0 {
		addr = Addr
	}
	return NewFromTransport(&i2cDev{bus: bus, addr: addr}, opts...)
}

// NewFromTransport returns a new DRV2605L device on an already addressed
// transport. It verifies the device ID, applies the options, and runs Init.
func NewFromTransport(t Transport, opts ...Option) (*Device, error) {
	d := &Device{t: t}

	id, err := d.DeviceID()
	if err != nil {
		return nil, fmt.Errorf("drv2605l: could not get device ID: %w", err)
	}
	if id != DeviceID {
		return nil, ErrNotDevice
	}

	if _, err := d.Options(opts...); err != nil {
		return nil, err
	}

	if err := d.Init(); err != nil {
		return nil, err
	}

	return d, nil
}

// Close puts the device into standby and closes the bus if this device
// opened it.
func (d *Device) Close() {
	d.EnterStandby()
	if d.bus != nil {
		d.bus.Close()
	}
}

// Init brings the device from an unknown state to a usable one: it clears
// any reset/standby condition, writes the feedback-control register and
// waveform library for the stored motor type, and selects internal-trigger
// mode. It stops at the first failed write, in which case the device is left
// as last written and the tracked mode stays unset.
func (d *Device) Init() error {
	d.modeSet = false

	if err := d.Write(ModeReg, 0x00); err != nil {
		return fmt.Errorf("drv2605l: could not leave standby: %w", err)
	}

	fb := motorLRA
	lib := LibLRA
	if d.motor == ERM {
		fb = motorERM
		lib = LibB
	}
	if err := d.Write(FeedbackControl, fb); err != nil {
		return fmt.Errorf("drv2605l: could not configure feedback control: %w", err)
	}
	if err := d.SetLibrary(lib); err != nil {
		return err
	}

	return d.SetMode(ModeInternalTrigger)
}

// Reset resets the device. All configuration registers return to their
// power-on state; Init must be run again before playing effects.
func (d *Device) Reset() error {
	if err := d.Write(ModeReg, DevReset); err != nil {
		return fmt.Errorf("drv2605l: could not reset: %w", err)
	}
	d.modeSet = false

	return nil
}

// SetMotorType records the motor type to apply on the next Init. It is
// applied by writing the feedback-control register during initialization, so
// it must be called (or passed as the Motor option) before Init to take
// effect. Calling it afterwards updates the stored value only; the device
// register is not rewritten.
func (d *Device) SetMotorType(m MotorType) {
	d.motor = m
}

// Motor returns the stored motor type.
func (d *Device) Motor() MotorType {
	return d.motor
}

// SetMode writes the operating mode bits of the mode register, preserving
// the standby flag. The tracked mode is updated only after the write
// succeeds, so it never diverges from the last mode the device accepted.
func (d *Device) SetMode(mode byte) error {
	if _, err := d.config(ModeReg, ^(modeMask | DevReset), mode); err != nil {
		return fmt.Errorf("drv2605l: could not set mode: %w", err)
	}
	d.mode = mode
	d.modeSet = true

	return nil
}

// Mode returns the last successfully written operating mode. The second
// return value is false until a mode write has succeeded.
func (d *Device) Mode() (byte, bool) {
	return d.mode, d.modeSet
}

// EnterStandby sets the standby bit. The device keeps its operating mode
// while in standby; use ExitStandby to resume rather than re-running Init.
func (d *Device) EnterStandby() error {
	if _, err := d.config(ModeReg, ^Standby, Standby); err != nil {
		return fmt.Errorf("drv2605l: could not enter standby: %w", err)
	}
	return nil
}

// ExitStandby clears the standby bit, restoring the mode the device held
// before standby.
func (d *Device) ExitStandby() error {
	if _, err := d.config(ModeReg, ^Standby, 0); err != nil {
		return fmt.Errorf("drv2605l: could not exit standby: %w", err)
	}
	return nil
}

// SetLibrary selects the waveform library used to resolve effect ids.
func (d *Device) SetLibrary(lib byte) error {
	if err := d.Write(LibrarySel, lib); err != nil {
		return fmt.Errorf("drv2605l: could not select library: %w", err)
	}
	return nil
}

// DeviceID returns the part identifier from the status register.
func (d *Device) DeviceID() (byte, error) {
	status, err := d.Read(Status)
	if err != nil {
		return 0, err
	}
	return (status >> deviceIDShift) & deviceIDMask, nil
}

// Read reads a single byte from a register.
func (d *Device) Read(reg byte) (byte, error) {
	b, err := d.t.ReadRegister(reg)
	if err != nil {
		return 0, fmt.Errorf("drv2605l: could not read byte: %w", err)
	}

	return b, nil
}

// Write writes a byte to a register. Transport errors are returned
// unchanged; there are no retries at this layer.
func (d *Device) Write(reg, data byte) error {
	return d.t.WriteRegister(reg, data)
}

func (d *Device) config(reg, mask, flag byte) (byte, error) {
	cfg, err := d.Read(reg)
	if err != nil {
		return 0, fmt.Errorf("could not get %v from %v: %w", mask, reg, err)
	}
	old := cfg &^ mask
	cfg &= mask
	cfg |= flag
	if err := d.Write(reg, cfg); err != nil {
		return 0, fmt.Errorf("could not set %v in %v: %w", flag, reg, err)
	}

	return old, nil
}
