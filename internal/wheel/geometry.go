package wheel

import "math"

// Angular layout of the wheel. Angles are in degrees and grow
// counterclockwise from 3 o'clock; the pointer never moves.
const (
	SliceCount   = 6
	SliceWidth   = 360.0 / SliceCount
	PointerAngle = 0.0
)

// Arc is one angular sector of the wheel.
type Arc struct {
	Start float64
	End   float64
}

// Partition splits the full circle into n contiguous equal arcs starting
// at 0°.
func Partition(n int) []Arc {
	width := 360.0 / float64(n)
	arcs := make([]Arc, n)
	for i := range arcs {
		arcs[i] = Arc{Start: float64(i) * width, End: float64(i+1) * width}
	}
	return arcs
}

// Normalize360 maps any angle onto [0, 360).
func Normalize360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// ResolveWinner returns the index of the slice sitting under the pointer
// for the given wheel rotation. An offset landing exactly on a slice
// boundary belongs to the following slice.
func ResolveWinner(rotation, pointerAngle, sliceWidth float64) int {
	offset := Normalize360(pointerAngle - rotation)
	if offset >= 360 {
		offset = 0
	}
	return int(offset / sliceWidth)
}
