// Package drv2605x plays haptic feedback through a TI DRV2605 family motor
// driver. It covers library effect playback, custom waveform sequences,
// real-time intensity streaming, and derived heartbeat patterns. Low level
// register access lives in the package drv2605x/drv2605l.
package drv2605x

import (
	"context"
	"errors"
	"time"

	"github.com/stargazing-dino/drv2605x/drv2605l"
)

var (
	// ErrWrongDevice is thrown when trying to convert a drv2605x.Device to
	// the underlying *drv2605l.Device and the controller does not match.
	ErrWrongDevice = errors.New("wrong device")
)

// haptic is the register-level surface the high level API drives. It is
// satisfied by *drv2605l.Device.
type haptic interface {
	SetMode(mode byte) error
	EnterStandby() error
	ExitStandby() error

	SetWaveform(slot int, value byte) error
	ClearWaveformSequence() error
	Go() error
	Stop() error
	PlayWaveform(effect byte) error
	SetRTPInput(value byte) error

	Close()
}

// Device defines a DRV2605 haptic device. It is exclusively owned by one
// caller at a time and is not safe for concurrent use.
type Device struct {
	ctrl haptic

	bus   string
	addr  uint16
	motor drv2605l.MotorType

	wait func(ctx context.Context, d time.Duration) error
}

// New returns a new DRV2605L haptic device, initialized and ready to play
// effects in internal-trigger mode.
func New(opts ...Option) (*Device, error) {
	d := &Device{
		wait: sleep,
	}
	for _, opt := range opts {
		opt(d)
	}

	ctrl, err := drv2605l.New(d.bus, d.addr, drv2605l.Motor(d.motor))
	if err != nil {
		return nil, err
	}
	d.ctrl = ctrl

	return d, nil
}

// Close puts the device into standby and closes the bus.
func (d *Device) Close() {
	d.ctrl.Close()
}

// PlayEffect plays a single effect from the built-in waveform library. It
// selects internal-trigger mode before triggering, so it can be called
// regardless of the current mode.
func (d *Device) PlayEffect(e Effect) error {
	if err := d.ctrl.SetMode(drv2605l.ModeInternalTrigger); err != nil {
		return err
	}

	return d.ctrl.PlayWaveform(byte(e))
}

// StopPlayback ends playback of the current sequence.
func (d *Device) StopPlayback() error {
	return d.ctrl.Stop()
}

// EnterStandby sets the device into power-save mode. The device keeps its
// operating mode; use ExitStandby to resume.
func (d *Device) EnterStandby() error {
	return d.ctrl.EnterStandby()
}

// ExitStandby wakes the device from power-save mode.
func (d *Device) ExitStandby() error {
	return d.ctrl.ExitStandby()
}

// ToDrv2605l converts a drv2605x device to a drv2605l device to access low
// level functions. Check the package drv2605x/drv2605l for detailed
// behavior.
func (d *Device) ToDrv2605l() (*drv2605l.Device, error) {
	device, ok := d.ctrl.(*drv2605l.Device)
	if !ok {
		return nil, ErrWrongDevice
	}

	return device, nil
}

// sleep waits for the given duration or until the context is canceled.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
