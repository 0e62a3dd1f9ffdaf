package wheel

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"hackwheel/internal/config"
	"hackwheel/internal/roulette"
)

// Sounder is the audio hook the wheel drives. A nil Sounder mutes the
// session.
type Sounder interface {
	Tick()
	Winner()
}

var ErrPoolSize = errors.New("wheel: exactly six projects required")

// Wheel is the interaction state machine behind the window: it owns the
// session State, maps key presses to the Spin/ToggleDetails/Exit signals,
// applies at most one physics step per frame, and draws. It implements
// ebiten.Game, so ebiten drives it at a fixed 60 ticks per second.
type Wheel struct {
	pool   []roulette.Project
	slices []Slice
	state  *State
	cfg    Config
	rng    *rand.Rand
	sound  Sounder
	fonts  *fontSet

	// input edge detection
	prevKey map[ebiten.Key]bool
}

func NewWheel(pool []roulette.Project, sound Sounder) (*Wheel, error) {
	if len(pool) != SliceCount {
		return nil, fmt.Errorf("%w, got %d", ErrPoolSize, len(pool))
	}
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}
	w := &Wheel{
		pool:    pool,
		state:   NewState(),
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		sound:   sound,
		fonts:   fonts,
		prevKey: map[ebiten.Key]bool{},
	}
	w.slices = buildSlices(pool, config.MaxLabelWidth, fonts.measureLabel)
	return w, nil
}

// Winner returns the selected project once the wheel has stopped.
func (w *Wheel) Winner() (roulette.Project, bool) {
	if w.state.Phase != Stopped {
		return roulette.Project{}, false
	}
	return w.pool[w.state.WinnerIndex], true
}

func (w *Wheel) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !w.prevKey[k]
		w.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyD) {
		w.state.ShowDetails = !w.state.ShowDetails
	}
	if justPressed(ebiten.KeySpace) {
		StartSpin(w.state, w.cfg, w.rng)
	}

	under := ResolveWinner(w.state.Rotation, PointerAngle, SliceWidth)
	wasSpinning := w.state.Phase == Spinning
	Step(w.state, w.cfg)

	if wasSpinning && w.sound != nil {
		switch {
		case w.state.Phase == Stopped:
			w.sound.Winner()
		case ResolveWinner(w.state.Rotation, PointerAngle, SliceWidth) != under:
			w.sound.Tick()
		}
	}
	return nil
}

func (w *Wheel) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
