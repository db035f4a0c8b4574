package render

import (
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"

	"github.com/Apolloisman/arcRaidertracking/internal/style"
)

// Renderer draws placeholder icons with a label face resolved once at
// startup. Construct with New.
type Renderer struct {
	face *LabelFace
}

// New returns a Renderer that draws labels with face.
func New(face *LabelFace) *Renderer {
	return &Renderer{face: face}
}

// Render draws one icon: the silhouette for shape outlined in the
// style color over the shared dark fill, with the label centered on
// top. The result is always a fresh Size x Size image on a transparent
// background. Shape values outside the known set take the square
// branch.
func (r *Renderer) Render(shape style.Shape, outline color.NRGBA, label string) *image.RGBA {
	c := newCanvas()

	switch shape {
	case style.ShapeDiamond:
		drawDiamond(c, outline)
	case style.ShapeCircle:
		drawCircle(c, outline)
	case style.ShapeBox:
		drawBox(c, outline)
	case style.ShapeArrowUp:
		drawArrow(c, outline, true)
	case style.ShapeArrowDown:
		drawArrow(c, outline, false)
	case style.ShapePadlock:
		drawPadlock(c, outline)
	case style.ShapeStar:
		drawStar(c, outline)
	case style.ShapeRadio:
		drawRadio(c, outline)
	case style.ShapeLeaf:
		drawLeaf(c, outline)
	default:
		drawSquare(c, outline)
	}

	r.face.drawLabel(c.img, label, outline)
	return c.img
}

func drawSquare(c *canvas, clr color.NRGBA) {
	c.shape(clr, func(p rasterx.Adder) {
		rasterx.AddRect(pad, pad, Size-pad, Size-pad, 0, p)
	})
}

func drawDiamond(c *canvas, clr color.NRGBA) {
	c.shape(clr, func(p rasterx.Adder) {
		addPolygon(p,
			point{half, pad},
			point{Size - pad, half},
			point{half, Size - pad},
			point{pad, half},
		)
	})
}

func drawCircle(c *canvas, clr color.NRGBA) {
	c.shape(clr, func(p rasterx.Adder) {
		rasterx.AddCircle(half, half, half-pad, p)
	})
}

func drawBox(c *canvas, clr color.NRGBA) {
	c.shape(clr, func(p rasterx.Adder) {
		rasterx.AddRect(pad+4, pad+4, Size-pad-4, Size-pad-4, 0, p)
	})
}

// drawArrow draws a thick arrow pointing up or down, with the head
// spanning the full padded width and a stem 20px wide.
func drawArrow(c *canvas, clr color.NRGBA, up bool) {
	tipY, tailY := float64(pad), float64(Size-pad)
	if !up {
		tipY, tailY = tailY, tipY
	}
	c.shape(clr, func(p rasterx.Adder) {
		addPolygon(p,
			point{half, tipY},
			point{Size - pad, half},
			point{half + 10, half},
			point{half + 10, tailY},
			point{half - 10, tailY},
			point{half - 10, half},
			point{pad, half},
		)
	})
}

// drawPadlock draws the lock body with a shackle arcing over its top
// edge.
func drawPadlock(c *canvas, clr color.NRGBA) {
	c.shape(clr, func(p rasterx.Adder) {
		rasterx.AddRect(half-12, half-8, half+12, half+8, 0, p)
	})
	c.strokePath(clr, outlineWidth, func(p rasterx.Adder) {
		addTopArc(p, half, half-8, 12)
	})
}

// drawStar draws a five-pointed star as a ten-vertex polygon with
// alternating outer and inner radii, first point straight up.
func drawStar(c *canvas, clr color.NRGBA) {
	const points = 5
	outer := float64(half - pad)
	inner := outer - 8

	pts := make([]point, 0, points*2)
	for i := 0; i < points*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float64(i)*math.Pi/points - math.Pi/2
		pts = append(pts, point{half + r*math.Cos(a), half + r*math.Sin(a)})
	}

	c.shape(clr, func(p rasterx.Adder) {
		addPolygon(p, pts...)
	})
}

// drawRadio draws the receiver body with an antenna mast and crossbar.
func drawRadio(c *canvas, clr color.NRGBA) {
	c.shape(clr, func(p rasterx.Adder) {
		rasterx.AddRect(half-10, half-6, half+10, half+6, 0, p)
	})
	c.strokePath(clr, accentWidth, func(p rasterx.Adder) {
		p.Start(rasterx.ToFixedP(half, half-6))
		p.Line(rasterx.ToFixedP(half, half-12))
		p.Stop(false)
		p.Start(rasterx.ToFixedP(half-4, half-12))
		p.Line(rasterx.ToFixedP(half+4, half-12))
		p.Stop(false)
	})
}

// drawLeaf draws an ellipse with a vertical center vein.
func drawLeaf(c *canvas, clr color.NRGBA) {
	c.shape(clr, func(p rasterx.Adder) {
		rasterx.AddEllipse(half, half, 10, 8, 0, p)
	})
	c.strokePath(clr, accentWidth, func(p rasterx.Adder) {
		p.Start(rasterx.ToFixedP(half, half-8))
		p.Line(rasterx.ToFixedP(half, half+8))
		p.Stop(false)
	})
}
