// Package sound plays short synthesized cues for game events.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Cue parameters.
const (
	eatFreq       = 880.0
	eatDuration   = 80 * time.Millisecond
	crashFreq     = 110.0
	crashDuration = 150 * time.Millisecond
)

// Player plays the cue for a game event. Implementations must not block the
// simulation loop.
type Player interface {
	Play(ev core.Event)
	Close() error
}

// Nop is a Player that stays silent.
type Nop struct{}

// Play does nothing.
func (Nop) Play(core.Event) {}

// Close does nothing.
func (Nop) Close() error { return nil }

// Speaker plays cues on the default audio device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	closed bool
}

// NewSpeaker opens the audio device.
func NewSpeaker() (*Speaker, error) {
	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &Speaker{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Play mixes the event's cue into the output. Events without a cue are ignored.
func (s *Speaker) Play(ev core.Event) {
	cue, ok := Cue(ev, sampleRate)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(cue)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
	return nil
}

// Cue builds the streamer for an event: a short high sine blip for eating and
// a low, quieter square buzz for a crash.
func Cue(ev core.Event, rate beep.SampleRate) (beep.Streamer, bool) {
	switch ev {
	case core.EventAte:
		tone, err := generators.SineTone(rate, eatFreq)
		if err != nil {
			return nil, false
		}
		return beep.Take(rate.N(eatDuration), &effects.Volume{Streamer: tone, Base: 2, Volume: -2}), true
	case core.EventCrash:
		tone, err := generators.SquareTone(rate, crashFreq)
		if err != nil {
			return nil, false
		}
		return beep.Take(rate.N(crashDuration), &effects.Volume{Streamer: tone, Base: 2, Volume: -3}), true
	}
	return nil, false
}
