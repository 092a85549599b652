package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zephyrtronium/rpn"
)

func TestDisplay(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		places int
		prec   uint
		want   string
	}{
		{"calc", "5 3 −", -1, 0, "2.0"},
		{"calc-frac", "1 4 ÷", -1, 0, "0.25"},
		{"undefined", "3 +", -1, 0, "undefined"},
		{"places", "1 3 ÷", 3, 0, "0.333"},
		{"places-pad", "2", 2, 0, "2.00"},
		{"places-inf", "1 0 ÷", 2, 0, "inf"},
		{"big", "1 4 ÷", -1, 64, "0.25"},
		{"big-places", "2 √", 5, 128, "1.41421"},
		{"big-undefined", "0 0 ÷", 2, 64, "undefined"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := rpn.New()
			for _, tok := range rpn.Fields(c.src) {
				enter(b, tok)
			}
			if got := display(b, c.places, c.prec); got != c.want {
				t.Errorf("%q: want %q, got %q", c.src, c.want, got)
			}
		})
	}
}

func TestGiven(t *testing.T) {
	if v, err := given("2 3 ×"); err != nil || v != 6 {
		t.Errorf("2 3 ×: want 6, got %g %v", v, err)
	}
	if _, err := given("x"); err == nil {
		t.Error("undefined definition gave no error")
	}
}

func TestReadConfig(t *testing.T) {
	conf, err := readConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if conf.Display.Places != -1 || conf.Plot.Variable != "M" {
		t.Errorf("wrong defaults: %+v", conf)
	}

	dir := t.TempDir()
	name := filepath.Join(dir, "rpn.yaml")
	src := `
logging:
  log_level: debug
display:
  places: 4
plot:
  variable: x
  width: 320
  origin:
    x: 160
`
	if err := os.WriteFile(name, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}
	conf, err = readConfig(name)
	if err != nil {
		t.Fatal(err)
	}
	if conf.Logging.LogLevel != "debug" || conf.Display.Places != 4 {
		t.Errorf("wrong values: %+v", conf)
	}
	if conf.Plot.Variable != "x" || conf.Plot.Width != 320 || conf.Plot.Origin.X != 160 {
		t.Errorf("wrong plot values: %+v", conf.Plot)
	}
	if conf.Plot.Scale != 8 {
		t.Errorf("unset scale lost its default: %g", conf.Plot.Scale)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("colour: orange\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := readConfig(bad); err == nil {
		t.Error("unknown field gave no error")
	}
	if _, err := readConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file gave no error")
	}
}

func TestDrawPlot(t *testing.T) {
	b := rpn.New()
	for _, tok := range rpn.Fields("1 M ÷") {
		enter(b, tok)
	}
	conf := defaultConfig()
	conf.Plot.Width = 2
	conf.Plot.Scale = 1
	conf.Plot.Origin.X = 1
	conf.Plot.Origin.Y = 0
	var buf bytes.Buffer
	drawPlot(&buf, b, conf)
	want := "# 1.0÷M\n0\t1\n\n2\t-1\n"
	if got := buf.String(); got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for s, want := range cases {
		if got := logLevelFromString(s); got != want {
			t.Errorf("%q: want %v, got %v", s, want, got)
		}
	}
}

func TestInitLoggerFile(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)
	name := filepath.Join(t.TempDir(), "rpn.log")
	initLogger(loggerConfig{LogToFile: true, Filename: name, LogLevel: "info"})
	slog.Info("hello from the test")
	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "hello from the test") {
		t.Errorf("log file doesn't have the record: %q", b)
	}
}
