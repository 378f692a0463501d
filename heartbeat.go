package drv2605x

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stargazing-dino/drv2605x/drv2605l"
)

var (
	// ErrInvalidBPM is thrown when a heartbeat pattern has a rate of zero
	// or less beats per minute.
	ErrInvalidBPM = errors.New("bpm must be positive")
)

// HeartbeatPattern describes a two-pulse-per-cycle heartbeat: a strong S1
// ("lub") at the start of each cycle and a softer S2 ("dub") at a fixed
// phase offset after it. Amplitudes are raw intensity bytes and are only
// used by the custom (real-time playback) variant; the built-in variant
// plays fixed library clicks.
type HeartbeatPattern struct {
	BPM         int
	S1Amplitude byte
	S2Amplitude byte
}

// DefaultHeartbeat returns a resting heartbeat of 70 bpm.
func DefaultHeartbeat() HeartbeatPattern {
	return HeartbeatPattern{
		BPM:         70,
		S1Amplitude: 0x60,
		S2Amplitude: 0x38,
	}
}

// Pulse widths. Short compared to any plausible cycle; the S1 pulse decays
// through a half-amplitude step before release.
const (
	s1Pulse = 50 * time.Millisecond
	s1Decay = 30 * time.Millisecond
	s2Pulse = 40 * time.Millisecond
)

// cycle returns the duration of one full heartbeat cycle.
func (p HeartbeatPattern) cycle() time.Duration {
	return time.Duration(60000/p.BPM) * time.Millisecond
}

// s2Offset returns when the S2 pulse starts, measured from cycle start. The
// systole/diastole gap sits at roughly 30% of the cycle.
func (p HeartbeatPattern) s2Offset() time.Duration {
	return 3 * p.cycle() / 10
}

// PlayHeartbeatBuiltin plays one heartbeat cycle using only library
// effects: a strong click for S1, a device-side pause derived from the
// pattern's rate, a softer click for S2, then the remainder of the cycle.
// Device pauses resolve in 10 ms steps and top out at 1270 ms, so very low
// rates play a shortened tail. Re-trigger with Go on the low level device to
// loop. Suitable when the actuator setup cannot use real-time playback.
func (d *Device) PlayHeartbeatBuiltin(p HeartbeatPattern) error {
	if p.BPM <= 0 {
		return fmt.Errorf("drv2605x: could not play heartbeat: %w", ErrInvalidBPM)
	}

	if err := d.ctrl.SetMode(drv2605l.ModeInternalTrigger); err != nil {
		return err
	}
	if err := d.ctrl.ClearWaveformSequence(); err != nil {
		return err
	}

	seq := []byte{
		byte(StrongClick100),
		drv2605l.Delay(p.s2Offset()),
		byte(StrongClick60),
		drv2605l.Delay(p.cycle() - p.s2Offset()),
	}
	for i, v := range seq {
		if err := d.ctrl.SetWaveform(i, v); err != nil {
			return err
		}
	}

	return d.ctrl.Go()
}

// PlayDoubleClickHeartbeat plays the library's double click, the simplest
// heartbeat-like effect.
func (d *Device) PlayDoubleClickHeartbeat() error {
	return d.PlayEffect(DoubleClick100)
}

// PlayCustomHeartbeat switches to real-time playback and pulses the given
// pattern indefinitely, shaping each cycle with the pattern's amplitudes.
// It blocks until the context is canceled or a register write fails, and
// returns the first error either way. Cancellation is observed between
// phases, never in the middle of a register write.
func (d *Device) PlayCustomHeartbeat(ctx context.Context, p HeartbeatPattern) error {
	if p.BPM <= 0 {
		return fmt.Errorf("drv2605x: could not play heartbeat: %w", ErrInvalidBPM)
	}

	if err := d.ctrl.SetMode(drv2605l.ModeRealTime); err != nil {
		return err
	}

	cycle := p.cycle()
	s2Off := p.s2Offset()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		// S1: full amplitude, half amplitude, release.
		if err := d.pulse(ctx, p.S1Amplitude, s1Pulse); err != nil {
			return err
		}
		if err := d.pulse(ctx, p.S1Amplitude/2, s1Decay); err != nil {
			return err
		}
		if err := d.pulse(ctx, 0, s2Off-s1Pulse-s1Decay); err != nil {
			return err
		}

		// S2, then rest until the next cycle.
		if err := d.pulse(ctx, p.S2Amplitude, s2Pulse); err != nil {
			return err
		}
		if err := d.pulse(ctx, 0, cycle-s2Off-s2Pulse); err != nil {
			return err
		}
	}
}

// pulse drives one intensity and holds it for the given duration.
func (d *Device) pulse(ctx context.Context, amp byte, hold time.Duration) error {
	if err := d.ctrl.SetRTPInput(amp); err != nil {
		return err
	}
	if hold <= 0 {
		return ctx.Err()
	}

	return d.wait(ctx, hold)
}
