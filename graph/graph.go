// Package graph samples a calculator program as a function of one variable
// for plotting.
package graph

import (
	"math"

	"github.com/zephyrtronium/rpn"
)

// DefaultVar is the variable a Plot sweeps unless told otherwise.
const DefaultVar = "M"

// Point is a location in view coordinates, in points.
type Point struct {
	X, Y float64
}

// Viewport describes the geometry of a view onto the plane.
type Viewport struct {
	// Width is the width of the view in points.
	Width float64
	// ContentScale is the number of pixels per point. Zero means 1.
	ContentScale float64
	// Scale is the number of points per unit. Zero means 1.
	Scale float64
	// Origin is the position of (0, 0) in the view.
	Origin Point
}

// Segment is a run of points that should be joined by lines.
type Segment []Point

// Plot evaluates a program as y(x). It owns its own Brain, so the program
// it was built from can keep changing.
type Plot struct {
	brain *rpn.Brain
	v     string
}

// Option is an option for New.
type Option func(*Plot)

// Var sets the name of the variable that holds x.
func Var(name string) Option {
	return func(p *Plot) { p.v = name }
}

// Engine sets the options used to create the plot's Brain.
func Engine(opts ...rpn.Option) Option {
	return func(p *Plot) { p.brain = rpn.New(opts...) }
}

// New creates a Plot of the program given as tokens, as returned by
// (*rpn.Brain).Program.
func New(program []string, opts ...Option) *Plot {
	p := &Plot{v: DefaultVar}
	for _, opt := range opts {
		opt(p)
	}
	if p.brain == nil {
		p.brain = rpn.New()
	}
	p.brain.SetProgram(program)
	return p
}

// Y evaluates the program with the plot variable set to x.
func (p *Plot) Y(x float64) (float64, bool) {
	p.brain.Set(p.v, x)
	return p.brain.Eval()
}

// Program returns the plotted program's tokens.
func (p *Plot) Program() []string {
	return p.brain.Program()
}

// Title describes the plotted expression. It is empty if the program is.
func (p *Plot) Title() string {
	return p.brain.Title()
}

// Sample evaluates the plot at every pixel column of vp, from the left edge
// through the pixel at the right edge, and returns the curve in view
// coordinates. The curve is broken wherever y is undefined or is neither
// zero nor a normal number.
func (p *Plot) Sample(vp Viewport) []Segment {
	cs := vp.ContentScale
	if cs == 0 {
		cs = 1
	}
	scale := vp.Scale
	if scale == 0 {
		scale = 1
	}
	n := int(vp.Width * cs)
	var r []Segment
	var cur Segment
	for i := 0; i <= n; i++ {
		px := float64(i) / cs
		y, ok := p.Y((px - vp.Origin.X) / scale)
		if !ok || !drawable(y) {
			if len(cur) > 0 {
				r = append(r, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, Point{X: px, Y: vp.Origin.Y - y*scale})
	}
	if len(cur) > 0 {
		r = append(r, cur)
	}
	return r
}

// drawable reports whether y is zero or a normal float.
func drawable(y float64) bool {
	if y == 0 {
		return true
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return false
	}
	return math.Abs(y) >= 0x1p-1022
}
