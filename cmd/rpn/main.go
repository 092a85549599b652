package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zephyrtronium/rpn"
	"github.com/zephyrtronium/rpn/graph"
)

func main() {
	log.SetFlags(0)
	var (
		inname, confname string
		with             [][2]string
		nl, echo, plot   bool
		places, prec     int
		variable         string
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&confname, "config", os.Getenv(ENV_CONFIG_FILE_PATH), "YAML config file")
	flag.Func("given", "name=value variable definition, value in RPN (any number of times)", addwith)
	flag.IntVar(&places, "places", -1, "decimal places to round results to (-1 for calculator display)")
	flag.IntVar(&prec, "p", 0, "precision of calculations in bits (0 for float64)")
	flag.BoolVar(&nl, "n", false, "treat separate input lines as separate programs")
	flag.BoolVar(&echo, "echo", false, "print program descriptions")
	flag.BoolVar(&plot, "plot", false, "sample the final program as a graph")
	flag.StringVar(&variable, "var", "M", "variable to sweep when plotting")
	flag.Parse()

	conf, err := readConfig(confname)
	if err != nil {
		log.Fatal(err)
	}
	// Flags given explicitly override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "places":
			conf.Display.Places = places
		case "p":
			if prec < 0 {
				log.Fatalf("precision (%d) must be positive", prec)
			}
			conf.Display.Prec = uint(prec)
		case "var":
			conf.Plot.Variable = variable
		}
	})
	initLogger(conf.Logging)

	var ins []io.Reader
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		ins = append(ins, f)
	}
	for _, arg := range flag.Args() {
		ins = append(ins, strings.NewReader(arg))
	}

	brain := rpn.New()
	for _, d := range with {
		v, err := given(d[1])
		if err != nil {
			log.Fatalf("setting %s: %v", d[0], err)
		}
		brain.Set(d[0], v)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for _, in := range ins {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			if nl {
				brain.Clear()
			}
			for _, tok := range rpn.Fields(sc.Text()) {
				enter(brain, tok)
			}
			if echo {
				fmt.Fprintf(out, "%v = ", brain)
			}
			fmt.Fprintln(out, display(brain, conf.Display.Places, conf.Display.Prec))
		}
		if err := sc.Err(); err != nil {
			log.Fatal(err)
		}
	}

	if plot {
		drawPlot(out, brain, conf)
	}
}

// enter feeds one token to the brain the way a keypad would: operators are
// performed, numbers are pushed, and anything else is a variable.
func enter(brain *rpn.Brain, tok string) {
	if rpn.Known(tok) {
		brain.Perform(tok)
		return
	}
	if v, err := strconv.ParseFloat(tok, 64); err == nil {
		brain.Push(v)
		return
	}
	brain.PushVar(tok)
}

// given evaluates a variable definition written as an RPN program.
func given(src string) (float64, error) {
	b := rpn.New()
	b.SetProgram(rpn.Fields(src))
	v, ok := b.Eval()
	if !ok {
		return 0, fmt.Errorf("%q is undefined", src)
	}
	return v, nil
}

// display formats the brain's current result.
func display(brain *rpn.Brain, places int, prec uint) string {
	if prec != 0 {
		r, ok := brain.EvalBig(prec)
		if !ok {
			return "undefined"
		}
		if places < 0 || r.IsInf() {
			return r.Text('g', -1)
		}
		d, err := decimal.NewFromString(r.Text('e', -1))
		if err != nil {
			slog.Warn("formatting result", slog.String("value", r.String()), slog.Any("err", err))
			return r.Text('g', -1)
		}
		return d.StringFixed(int32(places))
	}
	v, ok := brain.Eval()
	if !ok {
		return "undefined"
	}
	if places < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return rpn.FormatOperand(v)
	}
	return decimal.NewFromFloat(v).StringFixed(int32(places))
}

// drawPlot prints the segments of the brain's program plotted over the
// configured viewport, one point per line and a blank line between segments.
func drawPlot(w io.Writer, brain *rpn.Brain, conf config) {
	p := graph.New(brain.Program(), graph.Var(conf.Plot.Variable))
	vp := graph.Viewport{
		Width:        conf.Plot.Width,
		ContentScale: conf.Plot.ContentScale,
		Scale:        conf.Plot.Scale,
		Origin:       graph.Point{X: conf.Plot.Origin.X, Y: conf.Plot.Origin.Y},
	}
	segs := p.Sample(vp)
	slog.Info("plotted", slog.String("title", p.Title()), slog.Int("segments", len(segs)))
	fmt.Fprintf(w, "# %s\n", p.Title())
	for i, s := range segs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		for _, pt := range s {
			fmt.Fprintf(w, "%g\t%g\n", pt.X, pt.Y)
		}
	}
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return f, nil
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
