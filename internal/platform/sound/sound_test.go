package sound

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// drain streams s to the end and returns the sample count and peak amplitude.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("cue never ended")
	return 0, 0
}

func TestCueLengths(t *testing.T) {
	rate := beep.SampleRate(8000)
	tests := []struct {
		ev  core.Event
		dur time.Duration
	}{
		{core.EventAte, eatDuration},
		{core.EventCrash, crashDuration},
	}

	for _, tt := range tests {
		cue, ok := Cue(tt.ev, rate)
		if !ok {
			t.Fatalf("Cue(%v) = false, expected a cue", tt.ev)
		}
		n, peak := drain(t, cue)
		if want := rate.N(tt.dur); n != want {
			t.Errorf("Cue(%v) length = %d samples, expected %d", tt.ev, n, want)
		}
		if peak <= 0 || peak > 1 {
			t.Errorf("Cue(%v) peak = %v, expected (0, 1]", tt.ev, peak)
		}
	}
}

func TestNoCueForRestart(t *testing.T) {
	if _, ok := Cue(core.EventRestart, sampleRate); ok {
		t.Error("Cue(EventRestart) should be silent")
	}
}

func TestNopPlayer(t *testing.T) {
	var p Player = Nop{}
	p.Play(core.EventAte)
	if err := p.Close(); err != nil {
		t.Errorf("Close() = %v, expected nil", err)
	}
}
