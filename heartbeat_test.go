package drv2605x

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stargazing-dino/drv2605x/drv2605l"
)

// Compile-time checks.
var (
	_ haptic = (*drv2605l.Device)(nil)
	_ haptic = (*fakeCtrl)(nil)
)

// fakeCtrl records the register-level operations the high level API issues.
type fakeCtrl struct {
	trace []string
	slots [8]byte
	rtp   []byte

	rtpErr   error
	rtpErrAt int // fail the nth SetRTPInput (1-based)
}

func (f *fakeCtrl) SetMode(mode byte) error {
	f.trace = append(f.trace, fmt.Sprintf("mode:%#x", mode))
	return nil
}

func (f *fakeCtrl) EnterStandby() error {
	f.trace = append(f.trace, "standby")
	return nil
}

func (f *fakeCtrl) ExitStandby() error {
	f.trace = append(f.trace, "wake")
	return nil
}

func (f *fakeCtrl) SetWaveform(slot int, value byte) error {
	f.trace = append(f.trace, fmt.Sprintf("slot%d:%#x", slot, value))
	f.slots[slot] = value
	return nil
}

func (f *fakeCtrl) ClearWaveformSequence() error {
	f.trace = append(f.trace, "clear")
	f.slots = [8]byte{}
	return nil
}

func (f *fakeCtrl) Go() error {
	f.trace = append(f.trace, "go")
	return nil
}

func (f *fakeCtrl) Stop() error {
	f.trace = append(f.trace, "stop")
	return nil
}

func (f *fakeCtrl) PlayWaveform(effect byte) error {
	f.trace = append(f.trace, fmt.Sprintf("play:%#x", effect))
	return nil
}

func (f *fakeCtrl) SetRTPInput(value byte) error {
	if f.rtpErr != nil && len(f.rtp)+1 == f.rtpErrAt {
		return f.rtpErr
	}
	f.trace = append(f.trace, "rtp")
	f.rtp = append(f.rtp, value)
	return nil
}

func (f *fakeCtrl) Close() {}

func TestHeartbeatTiming(t *testing.T) {
	p := HeartbeatPattern{BPM: 60}

	if got := p.cycle(); got != time.Second {
		t.Errorf("cycle at 60 bpm = %v, want 1s", got)
	}
	if got := p.s2Offset(); got != 300*time.Millisecond {
		t.Errorf("S2 offset at 60 bpm = %v, want 300ms", got)
	}

	p.BPM = 120
	if got := p.cycle(); got != 500*time.Millisecond {
		t.Errorf("cycle at 120 bpm = %v, want 500ms", got)
	}
}

func TestPlayHeartbeatBuiltin(t *testing.T) {
	f := &fakeCtrl{}
	d := &Device{ctrl: f, wait: sleep}

	if err := d.PlayHeartbeatBuiltin(HeartbeatPattern{BPM: 60}); err != nil {
		t.Fatalf("PlayHeartbeatBuiltin: %v", err)
	}

	want := []string{
		"mode:0x0", // internal trigger
		"clear",
		"slot0:0x1",  // S1: strong click 100%
		"slot1:0x9e", // 300ms
		"slot2:0x2",  // S2: strong click 60%
		"slot3:0xc6", // 700ms tail
		"go",
	}
	if len(f.trace) != len(want) {
		t.Fatalf("trace = %v, want %v", f.trace, want)
	}
	for i := range want {
		if f.trace[i] != want[i] {
			t.Errorf("trace[%d] = %q, want %q", i, f.trace[i], want[i])
		}
	}

	// Slots past the pattern stay terminated.
	for i := 4; i < 8; i++ {
		if f.slots[i] != 0 {
			t.Errorf("slot %d = %#x, want terminator", i, f.slots[i])
		}
	}
}

func TestPlayHeartbeatBuiltinInvalidBPM(t *testing.T) {
	f := &fakeCtrl{}
	d := &Device{ctrl: f, wait: sleep}

	if err := d.PlayHeartbeatBuiltin(HeartbeatPattern{}); !errors.Is(err, ErrInvalidBPM) {
		t.Fatalf("error = %v, want ErrInvalidBPM", err)
	}
	if len(f.trace) != 0 {
		t.Errorf("invalid pattern reached the device: %v", f.trace)
	}
}

func TestPlayCustomHeartbeatCycle(t *testing.T) {
	f := &fakeCtrl{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var waits []time.Duration
	d := &Device{
		ctrl: f,
		wait: func(ctx context.Context, hold time.Duration) error {
			waits = append(waits, hold)
			if len(waits) == 5 { // one full cycle
				cancel()
			}
			return ctx.Err()
		},
	}

	p := HeartbeatPattern{BPM: 60, S1Amplitude: 0x60, S2Amplitude: 0x38}
	if err := d.PlayCustomHeartbeat(ctx, p); !errors.Is(err, context.Canceled) {
		t.Fatalf("PlayCustomHeartbeat returned %v, want context.Canceled", err)
	}

	wantRTP := []byte{0x60, 0x30, 0x00, 0x38, 0x00}
	if len(f.rtp) != len(wantRTP) {
		t.Fatalf("rtp writes = %#v, want %#v", f.rtp, wantRTP)
	}
	for i := range wantRTP {
		if f.rtp[i] != wantRTP[i] {
			t.Errorf("rtp[%d] = %#x, want %#x", i, f.rtp[i], wantRTP[i])
		}
	}

	wantWaits := []time.Duration{
		50 * time.Millisecond,  // S1 full
		30 * time.Millisecond,  // S1 decay
		220 * time.Millisecond, // to S2 offset
		40 * time.Millisecond,  // S2
		660 * time.Millisecond, // rest of cycle
	}
	if len(waits) != len(wantWaits) {
		t.Fatalf("waits = %v, want %v", waits, wantWaits)
	}
	for i := range wantWaits {
		if waits[i] != wantWaits[i] {
			t.Errorf("wait[%d] = %v, want %v", i, waits[i], wantWaits[i])
		}
	}

	if f.trace[0] != "mode:0x5" {
		t.Errorf("first op = %q, want real-time playback mode", f.trace[0])
	}
}

func TestPlayCustomHeartbeatTransportError(t *testing.T) {
	nack := errors.New("i2c: nack")
	f := &fakeCtrl{rtpErr: nack, rtpErrAt: 3}
	d := &Device{
		ctrl: f,
		wait: func(ctx context.Context, hold time.Duration) error { return ctx.Err() },
	}

	p := HeartbeatPattern{BPM: 60, S1Amplitude: 0x60, S2Amplitude: 0x38}
	err := d.PlayCustomHeartbeat(context.Background(), p)
	if !errors.Is(err, nack) {
		t.Fatalf("PlayCustomHeartbeat returned %v, want transport error", err)
	}
	if len(f.rtp) != 2 {
		t.Errorf("loop continued after failed write: %#v", f.rtp)
	}
}

func TestPlayDoubleClickHeartbeat(t *testing.T) {
	f := &fakeCtrl{}
	d := &Device{ctrl: f, wait: sleep}

	if err := d.PlayDoubleClickHeartbeat(); err != nil {
		t.Fatalf("PlayDoubleClickHeartbeat: %v", err)
	}

	want := []string{"mode:0x0", "play:0xa"}
	if len(f.trace) != len(want) || f.trace[0] != want[0] || f.trace[1] != want[1] {
		t.Fatalf("trace = %v, want %v", f.trace, want)
	}
}
