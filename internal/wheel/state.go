package wheel

// Phase is the lifecycle of one wheel session.
type Phase int

const (
	Idle Phase = iota
	Spinning
	Stopped
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Spinning:
		return "spinning"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

const noWinner = -1

// State is the single mutable record of one wheel session. The Wheel owns
// it and is its only writer; Step mutates it through a pointer on the run
// loop and the renderer only reads it.
type State struct {
	Rotation    float64 // degrees, always in [0,360)
	Velocity    float64 // degrees per tick, zero unless Spinning
	Phase       Phase
	WinnerIndex int // valid only while Phase == Stopped
	ShowDetails bool
}

func NewState() *State {
	return &State{WinnerIndex: noWinner}
}
