package wheel

import (
	"image/color"

	"hackwheel/internal/roulette"
)

const (
	paletteSize   = 8
	maxLabelLines = 2
)

// palette is the classic eight-color wheel; slices pick by index mod 8.
var palette = [paletteSize]color.RGBA{
	{R: 231, G: 76, B: 60, A: 255},  // red
	{R: 52, G: 152, B: 219, A: 255}, // blue
	{R: 155, G: 89, B: 182, A: 255}, // purple
	{R: 46, G: 204, B: 113, A: 255}, // green
	{R: 241, G: 196, B: 15, A: 255}, // yellow
	{R: 230, G: 126, B: 34, A: 255}, // orange
	{R: 52, G: 73, B: 94, A: 255},   // dark blue
	{R: 26, G: 188, B: 156, A: 255}, // teal
}

// Slice is the derived per-project sector: geometry, fill color and the
// pre-wrapped label lines. Slices are rebuilt from the pool and never
// mutated on their own.
type Slice struct {
	Index int
	Arc   Arc
	Color color.RGBA
	Label []string
}

func buildSlices(pool []roulette.Project, maxLabelWidth float64, measure MeasureFunc) []Slice {
	arcs := Partition(len(pool))
	slices := make([]Slice, len(pool))
	for i, p := range pool {
		slices[i] = Slice{
			Index: i,
			Arc:   arcs[i],
			Color: palette[i%paletteSize],
			Label: ClampLines(WrapLines(p.Slug, maxLabelWidth, measure), maxLabelLines),
		}
	}
	return slices
}

// brighten lifts a color toward white by fraction f, used for the winner
// highlight.
func brighten(c color.RGBA, f float64) color.RGBA {
	lift := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*f)
	}
	return color.RGBA{R: lift(c.R), G: lift(c.G), B: lift(c.B), A: c.A}
}
