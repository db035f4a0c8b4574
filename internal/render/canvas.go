package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

const (
	// Size is the width and height of every generated icon in pixels.
	Size = 64

	// pad keeps shape geometry off the canvas edge.
	pad  = 4
	half = Size / 2

	outlineWidth = 3
	accentWidth  = 2
)

// fillColor is the translucent dark interior drawn behind every shape.
var fillColor = color.NRGBA{R: 20, G: 20, B: 20, A: 230}

// kappa approximates a quarter circle with a single cubic Bezier.
const kappa = 0.5522847498

// canvas bundles one icon image with a filler and stroker that share
// its scanner.
type canvas struct {
	img     *image.RGBA
	filler  *rasterx.Filler
	stroker *rasterx.Stroker
}

func newCanvas() *canvas {
	img := image.NewRGBA(image.Rect(0, 0, Size, Size))
	scanner := rasterx.NewScannerGV(Size, Size, img, img.Bounds())
	return &canvas{
		img:     img,
		filler:  rasterx.NewFiller(Size, Size, scanner),
		stroker: rasterx.NewStroker(Size, Size, scanner),
	}
}

// fillPath rasterizes the path produced by add with the shared fill
// color.
func (c *canvas) fillPath(add func(rasterx.Adder)) {
	add(c.filler)
	c.filler.SetColor(fillColor)
	c.filler.Draw()
	c.filler.Clear()
}

// strokePath rasterizes the path produced by add as an outline. Stroke
// parameters must be set before the path is added.
func (c *canvas) strokePath(clr color.NRGBA, width float64, add func(rasterx.Adder)) {
	c.stroker.SetStroke(
		fixed.Int26_6(width*64), fixed.Int26_6(4*64),
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round,
	)
	add(c.stroker)
	c.stroker.SetColor(clr)
	c.stroker.Draw()
	c.stroker.Clear()
}

// shape draws the standard marker treatment: the dark fill and a
// colored outline over the same path.
func (c *canvas) shape(clr color.NRGBA, add func(rasterx.Adder)) {
	c.fillPath(add)
	c.strokePath(clr, outlineWidth, add)
}

// point is a canvas coordinate in pixels.
type point struct {
	x, y float64
}

// addPolygon adds the closed loop through pts.
func addPolygon(p rasterx.Adder, pts ...point) {
	p.Start(rasterx.ToFixedP(pts[0].x, pts[0].y))
	for _, pt := range pts[1:] {
		p.Line(rasterx.ToFixedP(pt.x, pt.y))
	}
	p.Stop(true)
}

// addTopArc adds an open half circle centered on (cx, cy) with radius
// r, arcing over the center from left to right.
func addTopArc(p rasterx.Adder, cx, cy, r float64) {
	o := r * kappa
	p.Start(rasterx.ToFixedP(cx-r, cy))
	p.CubeBezier(rasterx.ToFixedP(cx-r, cy-o), rasterx.ToFixedP(cx-o, cy-r), rasterx.ToFixedP(cx, cy-r))
	p.CubeBezier(rasterx.ToFixedP(cx+o, cy-r), rasterx.ToFixedP(cx+r, cy-o), rasterx.ToFixedP(cx+r, cy))
	p.Stop(false)
}

// WritePNG encodes img to a new file at path. A file that fails to
// encode is removed rather than left truncated on disk.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
