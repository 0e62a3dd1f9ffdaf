package wheel

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"hackwheel/internal/config"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

var (
	backgroundColor  = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	pointerColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	bannerColor      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	titleColor       = color.RGBA{R: 255, G: 255, B: 200, A: 255}
	detailColor      = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	instructionColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	hintColor        = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	overlayBackdrop  = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Draw renders one frame from the current state. It only reads state; all
// mutation happens in Update.
func (w *Wheel) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	cx := float64(config.WindowWidth) / 2
	cy := float64(config.WindowHeight) / 2

	for i := range w.slices {
		w.drawSlice(screen, &w.slices[i], cx, cy)
	}
	if w.state.Phase == Stopped {
		w.drawHighlight(screen, &w.slices[w.state.WinnerIndex], cx, cy)
	}
	w.drawPointer(screen, cx, cy)
	w.drawHeadline(screen)
	if w.state.ShowDetails {
		w.drawDetails(screen)
	}

	status := w.state.Phase.String()
	if w.state.Phase == Spinning {
		status = fmt.Sprintf("%s | %.1f deg/tick", status, w.state.Velocity)
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// point maps a wheel angle in degrees to screen coordinates. Screen y grows
// down while wheel angles grow counterclockwise, hence the minus.
func point(cx, cy, radius, deg float64) (float32, float32) {
	rad := deg * math.Pi / 180
	return float32(cx + radius*math.Cos(rad)), float32(cy - radius*math.Sin(rad))
}

// sectorPath traces the pie sector of s at the current rotation, one arc
// segment per degree.
func (w *Wheel) sectorPath(s *Slice, cx, cy float64) vector.Path {
	var path vector.Path
	start := w.state.Rotation + s.Arc.Start
	path.MoveTo(float32(cx), float32(cy))
	steps := int(SliceWidth)
	for step := 0; step <= steps; step++ {
		deg := start + SliceWidth*float64(step)/float64(steps)
		x, y := point(cx, cy, config.WheelRadius, deg)
		path.LineTo(x, y)
	}
	path.Close()
	return path
}

func (w *Wheel) drawSlice(screen *ebiten.Image, s *Slice, cx, cy float64) {
	fill := s.Color
	if w.state.Phase == Stopped && s.Index == w.state.WinnerIndex {
		fill = brighten(fill, 0.25)
	}
	fillPath(screen, w.sectorPath(s, cx, cy), fill)

	mid := w.state.Rotation + s.Arc.Start + SliceWidth/2
	lx, ly := point(cx, cy, config.LabelDistance, mid)

	total := float64(len(s.Label)) * config.LabelLineHeight
	for i, line := range s.Label {
		face := w.fonts.label
		if i > 0 {
			face = w.fonts.small
		}
		lineY := float64(ly) - total/2 + config.LabelLineHeight/2 + float64(i)*config.LabelLineHeight

		width := text.Advance(line, face)
		m := face.Metrics()
		op := &text.DrawOptions{}
		op.GeoM.Translate(-width/2, -(m.HAscent+m.HDescent)/2)
		op.GeoM.Rotate(-mid * math.Pi / 180)
		op.GeoM.Translate(float64(lx), lineY)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, face, op)
	}
}

func (w *Wheel) drawHighlight(screen *ebiten.Image, s *Slice, cx, cy float64) {
	path := w.sectorPath(s, cx, cy)
	strokePath(screen, path, 5, pointerColor)
}

func (w *Wheel) drawPointer(screen *ebiten.Image, cx, cy float64) {
	var path vector.Path
	tipX, tipY := point(cx, cy, config.WheelRadius+config.PointerInset, PointerAngle)
	baseX := float32(cx + config.WheelRadius + config.PointerInset + config.PointerLength)
	path.MoveTo(tipX, tipY)
	path.LineTo(baseX, float32(cy-config.PointerHalfSpan))
	path.LineTo(baseX, float32(cy+config.PointerHalfSpan))
	path.Close()
	fillPath(screen, path, pointerColor)
}

// drawHeadline draws the banner or the current instruction line.
func (w *Wheel) drawHeadline(screen *ebiten.Image) {
	switch w.state.Phase {
	case Stopped:
		winner := w.pool[w.state.WinnerIndex]
		banner := "SELECTED: " + winner.Title
		if text.Advance(banner, w.fonts.banner) > config.WindowWidth-40 {
			banner = "SELECTED: " + winner.Slug
		}
		w.drawCentered(screen, banner, w.fonts.banner, 50, bannerColor)
		hint := "Press SPACE to spin again | D for details | ESC to exit"
		if w.state.ShowDetails {
			hint = "Press D to hide details | ESC to exit"
		}
		w.drawCentered(screen, hint, w.fonts.body, config.WindowHeight-80, instructionColor)
	case Idle:
		w.drawCentered(screen, "Press SPACE to spin the wheel | ESC to exit", w.fonts.body, 50, instructionColor)
	}
}

// drawDetails renders the overlay: the winner's full record once stopped,
// otherwise the whole pool.
func (w *Wheel) drawDetails(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 60, 90, config.WindowWidth-120, config.WindowHeight-260, overlayBackdrop, false)

	y := 100.0
	if w.state.Phase == Stopped {
		winner := w.pool[w.state.WinnerIndex]
		w.drawCentered(screen, "Full Title: "+winner.Title, w.fonts.body, y, titleColor)
		y += 40
		desc := ClampLines(WrapLines(winner.Description, config.WindowWidth-160, w.fonts.measureBody), 5)
		for _, line := range desc {
			w.drawCentered(screen, line, w.fonts.body, y, detailColor)
			y += 30
		}
		y += 10
		w.drawCentered(screen, "Communities: "+strings.Join(winner.Communities, ", "), w.fonts.body, y, detailColor)
		y += 30
		w.drawCentered(screen, "Team Size: "+winner.TeamSize, w.fonts.body, y, detailColor)
		return
	}

	w.drawCentered(screen, "Candidate projects", w.fonts.body, y, titleColor)
	y += 40
	for i, p := range w.pool {
		line := fmt.Sprintf("%d. %s  [%s]", i+1, p.Slug, strings.Join(p.Communities, ", "))
		w.drawCentered(screen, line, w.fonts.body, y, detailColor)
		y += 30
	}
	w.drawCentered(screen, "Press D to hide details", w.fonts.body, y+10, hintColor)
}

func (w *Wheel) drawCentered(screen *ebiten.Image, s string, face text.Face, y float64, col color.Color) {
	width := text.Advance(s, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(config.WindowWidth)/2-width/2, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, s, face, op)
}

func fillPath(screen *ebiten.Image, path vector.Path, col color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	drawVertices(screen, vs, is, col)
}

func strokePath(screen *ebiten.Image, path vector.Path, width float32, col color.RGBA) {
	op := &vector.StrokeOptions{Width: width}
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, op)
	drawVertices(screen, vs, is, col)
}

func drawVertices(screen *ebiten.Image, vs []ebiten.Vertex, is []uint16, col color.RGBA) {
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(col.R) / 255
		vs[i].ColorG = float32(col.G) / 255
		vs[i].ColorB = float32(col.B) / 255
		vs[i].ColorA = float32(col.A) / 255
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, whiteSubImage, op)
}
