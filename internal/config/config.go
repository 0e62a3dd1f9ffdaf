package config

const (
	WindowWidth  = 800
	WindowHeight = 800
	TPS          = 60

	// Wheel geometry (pixels)
	WheelRadius   = 300.0
	LabelDistance = WheelRadius * 0.5
	MaxLabelWidth = WheelRadius * 0.8

	LabelLineHeight = 20.0

	// Pointer triangle at 3 o'clock
	PointerInset    = 10.0
	PointerLength   = 40.0
	PointerHalfSpan = 20.0
)
