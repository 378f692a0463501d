package drv2605l

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidSlot throws an error when a waveform sequencer slot outside
	// [0,8) is addressed.
	ErrInvalidSlot error = errors.New("drv2605l: sequencer slot out of range")
)

// Terminator is the slot value that ends a waveform sequence. The device
// stops playback at the first terminator; later slots are never reached.
const Terminator byte = 0x00

const (
	delayFlag byte = 0x80
	delayMask byte = 0x7F

	// delayStep is the resolution of a device-side delay slot.
	delayStep = 10 * time.Millisecond
)

// Delay encodes a pause as a sequencer slot value. The device resolves
// delays in 10 ms steps from 0 ms to 1270 ms; the duration is rounded to the
// nearest step and clamped to that range.
func Delay(d time.Duration) byte {
	if d < 0 {
		d = 0
	}
	n := int64((d + delayStep/2) / delayStep)
	if n > int64(delayMask) {
		n = int64(delayMask)
	}

	return delayFlag | byte(n)
}

// DelayDuration decodes a delay slot value back into a duration.
func DelayDuration(b byte) time.Duration {
	return time.Duration(b&delayMask) * delayStep
}

// IsDelay reports whether a slot value is a delay rather than an effect id
// or the terminator.
func IsDelay(b byte) bool {
	return b&delayFlag != 0
}

// SetWaveform writes a value into one of the 8 sequencer slots. Any byte is
// accepted: an effect id, a delay from Delay, or the terminator. The device
// itself defines which sequences are legal; no semantic validation is done
// here.
func (d *Device) SetWaveform(slot int, value byte) error {
	if slot < 0 || slot >= seqSlots {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}

	return d.Write(WaveformSeq+byte(slot), value)
}

// ClearWaveformSequence writes the terminator to all 8 slots, so that no
// stale effect can trigger on the next Go.
func (d *Device) ClearWaveformSequence() error {
	for i := 0; i < seqSlots; i++ {
		if err := d.SetWaveform(i, Terminator); err != nil {
			return err
		}
	}

	return nil
}

// Go triggers playback of the current sequence. The device only acts on it
// in internal-trigger mode; selecting the mode first is the caller's
// responsibility.
func (d *Device) Go() error {
	return d.Write(GoReg, 0x01)
}

// Stop clears the go bit, ending playback of the current sequence.
func (d *Device) Stop() error {
	return d.Write(GoReg, 0x00)
}

// IsPlaying reports whether a sequence is currently playing.
func (d *Device) IsPlaying() (bool, error) {
	g, err := d.Read(GoReg)
	if err != nil {
		return false, err
	}

	return g&0x01 != 0, nil
}

// PlayWaveform plays a single library effect: the effect id goes to slot 0,
// the terminator to slot 1, and playback is triggered. The terminator makes
// any stale values in later slots unreachable, so no separate clear is
// needed. This is the fast path for simple feedback events.
func (d *Device) PlayWaveform(effect byte) error {
	if err := d.SetWaveform(0, effect); err != nil {
		return err
	}
	if err := d.SetWaveform(1, Terminator); err != nil {
		return err
	}

	return d.Go()
}

// SetRTPInput writes a raw intensity byte (0x00 off, 0xFF maximum) to the
// real-time playback register. The device only acts on it in real-time
// playback mode. No smoothing or rate limiting is applied; the caller times
// successive calls to shape a waveform.
func (d *Device) SetRTPInput(value byte) error {
	return d.Write(RTPInput, value)
}

// PlayRTP switches to real-time playback mode and drives the given
// intensity.
func (d *Device) PlayRTP(value byte) error {
	if err := d.SetMode(ModeRealTime); err != nil {
		return err
	}

	return d.SetRTPInput(value)
}
