package wheel

import (
	"bytes"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// fontSet bundles the faces the renderer draws with. Label wrapping is
// driven by measured advances of the label face, not character counts.
type fontSet struct {
	label  text.Face // first label line
	small  text.Face // continuation label lines
	banner text.Face // SELECTED banner
	body   text.Face // instructions and details overlay
}

func loadFonts() (*fontSet, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, err
	}
	return &fontSet{
		label:  &text.GoTextFace{Source: bold, Size: 18},
		small:  &text.GoTextFace{Source: bold, Size: 14},
		banner: &text.GoTextFace{Source: bold, Size: 36},
		body:   &text.GoTextFace{Source: regular, Size: 22},
	}, nil
}

func (f *fontSet) measureLabel(s string) float64 {
	return text.Advance(s, f.label)
}

func (f *fontSet) measureBody(s string) float64 {
	return text.Advance(s, f.body)
}
