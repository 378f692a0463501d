package drv2605l

import "fmt"

// Option defines a functional option for the device.
type Option func(d *Device) (Option, error)

// Options set different configuration options and returns the previous value
// of the last option passed.
func (d *Device) Options(options ...Option) (Option, error) {
	var old Option
	var err error
	for _, opt := range options {
		old, err = opt(d)
		if err != nil {
			return nil, err
		}
	}

	return old, nil
}

// Motor sets the motor type the next Init configures the device for. It
// only updates the stored value; see SetMotorType.
func Motor(m MotorType) Option {
	return func(d *Device) (Option, error) {
		old := d.motor
		d.SetMotorType(m)

		return Motor(old), nil
	}
}

// voltage registers scale the reference in steps of 5600/255 mV.
const voltageStep = 5600

// RatedVoltage sets the reference voltage for full-scale output, in
// millivolts. It accepts values from 0 to 5600 mV.
func RatedVoltage(mv uint16) Option {
	return func(d *Device) (Option, error) {
		if mv > voltageStep {
			mv = voltageStep
		}
		b := byte(uint32(mv) * 255 / voltageStep)

		old, err := d.config(RatedVoltageReg, 0, b)
		if err != nil {
			return nil, fmt.Errorf("drv2605l: could not configure rated voltage: %w", err)
		}

		return RatedVoltage(uint16(uint32(old) * voltageStep / 255)), nil
	}
}

// OverdriveClamp sets the ceiling for overdrive pulses, in millivolts. It
// accepts values from 0 to 5600 mV.
func OverdriveClamp(mv uint16) Option {
	return func(d *Device) (Option, error) {
		if mv > voltageStep {
			mv = voltageStep
		}
		b := byte(uint32(mv) * 255 / voltageStep)

		old, err := d.config(OverdriveReg, 0, b)
		if err != nil {
			return nil, fmt.Errorf("drv2605l: could not configure overdrive clamp: %w", err)
		}

		return OverdriveClamp(uint16(uint32(old) * voltageStep / 255)), nil
	}
}
