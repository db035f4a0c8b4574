package style

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Shape identifies one of the closed set of marker silhouettes the
// renderer knows how to draw.
type Shape int

const (
	// ShapeSquare is the plain padded rectangle drawn for styles that do
	// not name a more specific silhouette.
	ShapeSquare Shape = iota
	ShapeDiamond
	ShapeCircle
	ShapeBox
	ShapeArrowUp
	ShapeArrowDown
	ShapePadlock
	ShapeStar
	ShapeRadio
	ShapeLeaf
)

// shapeNames holds the tokens style sheets use for each shape.
var shapeNames = map[Shape]string{
	ShapeSquare:    "square",
	ShapeDiamond:   "diamond",
	ShapeCircle:    "circle",
	ShapeBox:       "box",
	ShapeArrowUp:   "arrow_up",
	ShapeArrowDown: "arrow_down",
	ShapePadlock:   "padlock",
	ShapeStar:      "star",
	ShapeRadio:     "radio",
	ShapeLeaf:      "leaf",
}

var shapesByName = func() map[string]Shape {
	m := make(map[string]Shape, len(shapeNames))
	for s, name := range shapeNames {
		m[name] = s
	}
	return m
}()

// String returns the style sheet token for the shape.
func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "square"
}

// ParseShape maps a style sheet token to its Shape value.
func ParseShape(name string) (Shape, error) {
	if s, ok := shapesByName[name]; ok {
		return s, nil
	}
	return ShapeSquare, fmt.Errorf("unknown shape %q", name)
}

// Style describes how icons for one category are drawn: the outline
// color, the silhouette, and the short label centered on top.
type Style struct {
	Color color.NRGBA
	Shape Shape
	Label string
}

// ParseHexColor converts a #rrggbb string to an opaque color.
func ParseHexColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
