package drv2605l

import (
	"testing"
	"time"
)

func TestDelayRoundTrip(t *testing.T) {
	for n := 0; n <= 127; n++ {
		d := time.Duration(n) * 10 * time.Millisecond

		b := Delay(d)
		if b != delayFlag|byte(n) {
			t.Fatalf("Delay(%v) = %#x, want %#x", d, b, delayFlag|byte(n))
		}
		if got := DelayDuration(b); got != d {
			t.Fatalf("DelayDuration(%#x) = %v, want %v", b, got, d)
		}
	}
}

func TestDelayRounding(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want byte
	}{
		{0, 0x80},
		{4 * time.Millisecond, 0x80},
		{5 * time.Millisecond, 0x81},
		{14 * time.Millisecond, 0x81},
		{15 * time.Millisecond, 0x82},
		{1270 * time.Millisecond, 0xFF},
		// Out of range clamps to the bounds.
		{-10 * time.Millisecond, 0x80},
		{2 * time.Second, 0xFF},
	}
	for _, tt := range tests {
		if got := Delay(tt.d); got != tt.want {
			t.Errorf("Delay(%v) = %#x, want %#x", tt.d, got, tt.want)
		}
	}
}

func TestIsDelay(t *testing.T) {
	if IsDelay(Terminator) {
		t.Error("terminator classified as delay")
	}
	if IsDelay(0x7B) {
		t.Error("effect id 123 classified as delay")
	}
	if !IsDelay(0x80) {
		t.Error("0 ms delay not classified as delay")
	}
	if !IsDelay(0xFF) {
		t.Error("1270 ms delay not classified as delay")
	}
}
