// Package audio plays short synthesized sound cues for game events.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies a sound effect.
type Cue int

const (
	CueStart Cue = iota
	CueEat
	CuePause
	CueResume
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueEat:
		return "eat"
	case CuePause:
		return "pause"
	case CueResume:
		return "resume"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Player plays cues without blocking the caller.
type Player interface {
	Play(c Cue)
	Close() error
}

// Nop is a Player that stays silent.
type Nop struct{}

func (Nop) Play(Cue)     {}
func (Nop) Close() error { return nil }

// SpeakerPlayer mixes cues onto the system audio device.
type SpeakerPlayer struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// NewSpeakerPlayer opens the audio device. volume is linear in (0, 1].
func NewSpeakerPlayer(volume float64) (*SpeakerPlayer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}

	p := &SpeakerPlayer{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues c on the mixer.
func (p *SpeakerPlayer) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	s := CueStreamer(c, sampleRate, p.volume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (p *SpeakerPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	return nil
}

type note struct {
	freq float64
	dur  time.Duration
}

var cueNotes = map[Cue][]note{
	CueStart:    {{523.25, 70 * time.Millisecond}, {659.25, 70 * time.Millisecond}, {783.99, 110 * time.Millisecond}},
	CueEat:      {{880, 60 * time.Millisecond}, {1318.51, 80 * time.Millisecond}},
	CuePause:    {{440, 90 * time.Millisecond}},
	CueResume:   {{659.25, 90 * time.Millisecond}},
	CueGameOver: {{392, 150 * time.Millisecond}, {311.13, 150 * time.Millisecond}, {196, 300 * time.Millisecond}},
}

// CueStreamer builds the finite streamer for c at the given volume.
func CueStreamer(c Cue, sr beep.SampleRate, volume float64) beep.Streamer {
	notes := cueNotes[c]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, newTone(sr, n.freq, n.dur))
	}
	return withVolume(beep.Seq(parts...), volume)
}

// withVolume converts a linear volume to beep's log scale.
// math.Log2(0) is -Inf, so silence is handled separately.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is a sine note with a short linear attack and release.
type tone struct {
	sr      beep.SampleRate
	freq    float64
	total   int
	pos     int
	attack  int
	release int
}

func newTone(sr beep.SampleRate, freq float64, dur time.Duration) *tone {
	total := sr.N(dur)
	return &tone{
		sr:      sr,
		freq:    freq,
		total:   total,
		attack:  min(sr.N(5*time.Millisecond), total/4),
		release: min(sr.N(30*time.Millisecond), total/2),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		v := 0.3 * t.envelope() * math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.sr))
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *tone) envelope() float64 {
	switch {
	case t.attack > 0 && t.pos < t.attack:
		return float64(t.pos) / float64(t.attack)
	case t.release > 0 && t.pos >= t.total-t.release:
		return float64(t.total-t.pos) / float64(t.release)
	default:
		return 1
	}
}

func (t *tone) Err() error { return nil }

// Listener returns an engine listener that plays the cue for each event.
func Listener(p Player) snake.Listener {
	return func(ev snake.Event) {
		if c, ok := CueFor(ev); ok {
			p.Play(c)
		}
	}
}

// CueFor maps an engine event to its cue. Plain moves are silent.
func CueFor(ev snake.Event) (Cue, bool) {
	switch ev := ev.(type) {
	case snake.AteEvent:
		return CueEat, true
	case snake.CollidedEvent:
		return CueGameOver, true
	case snake.PhaseChangedEvent:
		switch {
		case ev.To == snake.PhasePaused:
			return CuePause, true
		case ev.From == snake.PhasePaused && ev.To == snake.PhaseRunning:
			return CueResume, true
		case ev.To == snake.PhaseRunning:
			return CueStart, true
		}
	}
	return 0, false
}
