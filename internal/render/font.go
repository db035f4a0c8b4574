package render

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// labelPointSize is the point size labels are set at when a scalable
// face is available.
const labelPointSize = 10

// LabelFace is the text capability resolved once at startup and shared
// by every icon in a run.
type LabelFace struct {
	face     font.Face
	scalable bool
	source   string // "user", "embedded", or "bitmap"
}

// NewLabelFace resolves the label font. It tries, in order, the TTF
// file at fontPath (when non-empty) and the embedded Go Regular font,
// and falls back to the fixed 7x13 bitmap face when neither parses.
// The returned face is always usable.
func NewLabelFace(fontPath string) *LabelFace {
	if fontPath != "" {
		if data, err := os.ReadFile(fontPath); err == nil {
			if face, err := newScalableFace(data); err == nil {
				return &LabelFace{face: face, scalable: true, source: "user"}
			}
		}
	}
	if face, err := newScalableFace(goregular.TTF); err == nil {
		return &LabelFace{face: face, scalable: true, source: "embedded"}
	}
	return &LabelFace{face: basicfont.Face7x13, source: "bitmap"}
}

// newScalableFace parses TTF data into a face at the label point size.
func newScalableFace(data []byte) (font.Face, error) {
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    labelPointSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("building font face: %w", err)
	}
	return face, nil
}

// Scalable reports whether a scalable font was resolved, as opposed to
// the bitmap fallback.
func (f *LabelFace) Scalable() bool {
	return f.scalable
}

// Source reports where the face came from: "user", "embedded", or
// "bitmap".
func (f *LabelFace) Source() string {
	return f.source
}

// drawLabel draws up to the first three runes of label centered on the
// canvas in the style's color.
func (f *LabelFace) drawLabel(dst *image.RGBA, label string, clr color.NRGBA) {
	text := labelText(label)
	if text == "" {
		return
	}

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(clr),
		Face: f.face,
	}

	if f.scalable {
		bounds, _ := font.BoundString(f.face, text)
		w := (bounds.Max.X - bounds.Min.X).Ceil()
		h := (bounds.Max.Y - bounds.Min.Y).Ceil()
		x := (Size-w)/2 - bounds.Min.X.Floor()
		y := (Size-h)/2 - bounds.Min.Y.Floor()
		d.Dot = fixed.P(x, y)
	} else {
		// The bitmap face has a fixed 7px advance and 13px line height,
		// so center by arithmetic instead of measurement.
		w := 7 * len(text)
		d.Dot = fixed.P((Size-w)/2, half+4)
	}
	d.DrawString(text)
}

// labelText returns at most the first three runes of s.
func labelText(s string) string {
	runes := []rune(s)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return string(runes)
}
