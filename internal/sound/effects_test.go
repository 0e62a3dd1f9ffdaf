package sound

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestToneLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond

	tone := Tone(440, duration, rate)
	samples := drain(tone)

	if want := rate.N(duration); len(samples) != want {
		t.Fatalf("streamed %d samples, want %d", len(samples), want)
	}
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[1] < -1 || s[1] > 1 {
			t.Fatalf("sample %d out of range: %v", i, s)
		}
		if s[0] != s[1] {
			t.Fatalf("sample %d not mono-duplicated: %v", i, s)
		}
	}
	if tone.Err() != nil {
		t.Errorf("unexpected streamer error: %v", tone.Err())
	}
}

func TestToneExhausts(t *testing.T) {
	rate := beep.SampleRate(44100)
	tone := Tone(440, 10*time.Millisecond, rate)
	drain(tone)

	buf := make([][2]float64, 16)
	n, ok := tone.Stream(buf)
	if n != 0 || ok {
		t.Errorf("exhausted tone streamed (%d, %v), want (0, false)", n, ok)
	}
}

func TestShapeEnvelopeEdges(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond
	shaped := Shape(Tone(440, duration, rate), duration, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := drain(shaped)
	if len(samples) == 0 {
		t.Fatal("no samples streamed")
	}

	if v := math.Abs(samples[0][0]); v > 1e-9 {
		t.Errorf("attack should start silent, first sample %v", v)
	}
	if v := math.Abs(samples[len(samples)-1][0]); v > 0.05 {
		t.Errorf("release should end near silence, last sample %v", v)
	}

	var peak float64
	for _, s := range samples {
		if a := math.Abs(s[0]); a > peak {
			peak = a
		}
	}
	if peak < 0.5 {
		t.Errorf("sustain peak %v too quiet, envelope ate the tone", peak)
	}
}
