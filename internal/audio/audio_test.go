package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

func TestCueFor(t *testing.T) {
	tests := []struct {
		name string
		ev   snake.Event
		want Cue
		ok   bool
	}{
		{"move", snake.MovedEvent{}, 0, false},
		{"eat", snake.AteEvent{}, CueEat, true},
		{"crash", snake.CollidedEvent{Cause: snake.CauseWall}, CueGameOver, true},
		{"start", snake.PhaseChangedEvent{From: snake.PhaseIdle, To: snake.PhaseRunning}, CueStart, true},
		{"play again", snake.PhaseChangedEvent{From: snake.PhaseGameOver, To: snake.PhaseRunning}, CueStart, true},
		{"pause", snake.PhaseChangedEvent{From: snake.PhaseRunning, To: snake.PhasePaused}, CuePause, true},
		{"resume", snake.PhaseChangedEvent{From: snake.PhasePaused, To: snake.PhaseRunning}, CueResume, true},
		{"quit", snake.PhaseChangedEvent{From: snake.PhaseRunning, To: snake.PhaseIdle}, 0, false},
		{"game over phase", snake.PhaseChangedEvent{From: snake.PhaseRunning, To: snake.PhaseGameOver}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CueFor(tt.ev)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("CueFor() = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

type recordingPlayer struct {
	cues []Cue
}

func (r *recordingPlayer) Play(c Cue)   { r.cues = append(r.cues, c) }
func (r *recordingPlayer) Close() error { return nil }

func TestListenerWithEngine(t *testing.T) {
	rec := &recordingPlayer{}
	cfg := snake.DefaultConfig()
	cfg.Seed = 3
	e := snake.NewEngine(cfg, snake.WithListener(Listener(rec)))

	e.Start()
	e.Pause()
	e.Resume()
	e.Quit()

	want := []Cue{CueStart, CuePause, CueResume}
	if len(rec.cues) != len(want) {
		t.Fatalf("Expected cues %v, got %v", want, rec.cues)
	}
	for i := range want {
		if rec.cues[i] != want[i] {
			t.Errorf("Cue %d = %v, want %v", i, rec.cues[i], want[i])
		}
	}
}

func TestCueStreamerIsFinite(t *testing.T) {
	sr := beep.SampleRate(8000)
	for c := CueStart; c <= CueGameOver; c++ {
		t.Run(c.String(), func(t *testing.T) {
			s := CueStreamer(c, sr, 0.5)
			buf := make([][2]float64, 512)
			total := 0
			peak := 0.0
			for range 1000 {
				n, ok := s.Stream(buf)
				for i := range n {
					peak = math.Max(peak, math.Abs(buf[i][0]))
				}
				total += n
				if !ok {
					break
				}
			}

			var want int
			for _, n := range cueNotes[c] {
				want += sr.N(n.dur)
			}
			if total != want {
				t.Errorf("Expected %d samples, got %d", want, total)
			}
			if peak == 0 || peak > 1 {
				t.Errorf("Peak amplitude %v out of range", peak)
			}
		})
	}
}

func TestToneEnvelope(t *testing.T) {
	sr := beep.SampleRate(1000)
	tn := newTone(sr, 100, 100*time.Millisecond)

	buf := make([][2]float64, 200)
	n, ok := tn.Stream(buf)
	if n != 100 || !ok {
		t.Fatalf("Stream() = %d, %v; want 100, true", n, ok)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %v", buf[0][0])
	}
	if n, ok := tn.Stream(buf); n != 0 || ok {
		t.Errorf("Drained tone should report 0, false; got %d, %v", n, ok)
	}
}

func TestNopPlayer(t *testing.T) {
	var p Player = Nop{}
	p.Play(CueEat)
	if err := p.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
