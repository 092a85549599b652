package graph_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"math"
	"reflect"
	"testing"

	"github.com/zephyrtronium/rpn"
	"github.com/zephyrtronium/rpn/graph"
)

func TestY(t *testing.T) {
	p := graph.New([]string{"M", "2", "×"})
	for _, x := range []float64{-1, 0, 3} {
		if y, ok := p.Y(x); !ok || y != 2*x {
			t.Errorf("y(%g): want %g, got %g %t", x, 2*x, y, ok)
		}
	}
	q := graph.New([]string{"x", "1", "+"}, graph.Var("x"))
	if y, ok := q.Y(1); !ok || y != 2 {
		t.Errorf("x+1 at 1: want 2, got %g %t", y, ok)
	}
	u := graph.New([]string{"x", "1", "+"})
	if y, ok := u.Y(1); ok {
		t.Errorf("x+1 plotted over M gave %g", y)
	}
}

func TestSample(t *testing.T) {
	cases := []struct {
		name string
		prog []string
		vp   graph.Viewport
		want []graph.Segment
	}{
		{
			name: "line",
			prog: []string{"M"},
			vp:   graph.Viewport{Width: 4},
			want: []graph.Segment{{{0, 0}, {1, -1}, {2, -2}, {3, -3}, {4, -4}}},
		},
		{
			name: "scaled",
			prog: []string{"M"},
			vp:   graph.Viewport{Width: 2, ContentScale: 2, Scale: 2, Origin: graph.Point{X: 1, Y: 1}},
			want: []graph.Segment{{{0, 2}, {0.5, 1.5}, {1, 1}, {1.5, 0.5}, {2, 0}}},
		},
		{
			name: "pole",
			prog: []string{"1", "M", "÷"},
			vp:   graph.Viewport{Width: 4, Origin: graph.Point{X: 2}},
			want: []graph.Segment{{{0, 0.5}, {1, 1}}, {{3, -1}, {4, -0.5}}},
		},
		{
			name: "sqrt-domain",
			prog: []string{"M", "√"},
			vp:   graph.Viewport{Width: 4, Origin: graph.Point{X: 2}},
			want: []graph.Segment{{{2, 0}, {3, -1}, {4, -math.Sqrt(2)}}},
		},
		{
			name: "undefined",
			prog: []string{"N"},
			vp:   graph.Viewport{Width: 4},
			want: nil,
		},
		{
			name: "subnormal",
			prog: []string{"1e-310"},
			vp:   graph.Viewport{Width: 4},
			want: nil,
		},
		{
			name: "constant",
			prog: []string{"π", "π", "−"},
			vp:   graph.Viewport{Width: 1, Origin: graph.Point{Y: 5}},
			want: []graph.Segment{{{0, 5}, {1, 5}}},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := graph.New(c.prog)
			got := p.Sample(c.vp)
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("want %v, got %v", c.want, got)
			}
		})
	}
}

func TestPlotIndependent(t *testing.T) {
	b := rpn.New()
	b.PushVar("M")
	b.Perform(rpn.Sin)
	p := graph.New(b.Program())
	b.Push(2)
	b.Perform(rpn.Mul)
	b.Set("M", 100)
	if got := p.Title(); got != "sin(M)" {
		t.Errorf("title: want %q, got %q", "sin(M)", got)
	}
	if got := p.Program(); !reflect.DeepEqual(got, []string{"M", "sin"}) {
		t.Errorf("program: want [M sin], got %q", got)
	}
	if y, ok := p.Y(0); !ok || y != 0 {
		t.Errorf("sin(0): want 0, got %g %t", y, ok)
	}
	if _, ok := b.Lookup("M"); !ok {
		t.Error("plot changed the source brain's bindings")
	}
}

func TestEngine(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := graph.New([]string{"M", "k", "×"}, graph.Engine(rpn.SetVar("k", 3), rpn.WithLogger(l)))
	if y, ok := p.Y(2); !ok || y != 6 {
		t.Errorf("k×M at 2: want 6, got %g %t", y, ok)
	}
	if buf.Len() == 0 {
		t.Error("plot didn't use the configured logger")
	}
}

func Example() {
	b := rpn.New()
	b.PushVar(graph.DefaultVar)
	b.PushVar(graph.DefaultVar)
	b.Perform(rpn.Mul)

	p := graph.New(b.Program())
	fmt.Println(p.Title())
	for _, s := range p.Sample(graph.Viewport{Width: 4, Origin: graph.Point{X: 2, Y: 4}}) {
		fmt.Println(s)
	}

	// Output:
	// M×M
	// [{0 0} {1 3} {2 4} {3 3} {4 0}]
}
