package sound

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Engine owns the speaker and plays the session's two effects. When the
// speaker cannot be initialized (headless machine, no audio device) the
// engine stays muted instead of failing the session.
type Engine struct {
	enabled bool
}

func NewEngine() *Engine {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/20))
	return &Engine{enabled: err == nil}
}

// Tick is the short click played each time a slice boundary passes the
// pointer during a spin.
func (e *Engine) Tick() {
	if !e.enabled {
		return
	}
	d := 20 * time.Millisecond
	speaker.Play(Shape(Tone(1100, d, sampleRate), d, 2*time.Millisecond, 10*time.Millisecond, sampleRate))
}

// Winner is the two-note chime played when the wheel settles.
func (e *Engine) Winner() {
	if !e.enabled {
		return
	}
	d1, d2 := 120*time.Millisecond, 220*time.Millisecond
	n1 := Shape(Tone(660, d1, sampleRate), d1, 8*time.Millisecond, 30*time.Millisecond, sampleRate)
	n2 := Shape(Tone(880, d2, sampleRate), d2, 8*time.Millisecond, 80*time.Millisecond, sampleRate)
	speaker.Play(beep.Seq(n1, n2))
}
