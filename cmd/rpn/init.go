package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v2"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "RPN_CONFIG_FILE"
)

type loggerConfig struct {
	LogToFile       bool   `json:"log_to_file" yaml:"log_to_file"`
	Filename        string `json:"filename" yaml:"filename"`
	MaxSize         int    `json:"max_size" yaml:"max_size"`
	MaxAge          int    `json:"max_age" yaml:"max_age"`
	MaxBackups      int    `json:"max_backups" yaml:"max_backups"`
	LogLevel        string `json:"log_level" yaml:"log_level"`
	IncludeSrc      bool   `json:"include_src" yaml:"include_src"`
	CompressOldLogs bool   `json:"compress_old_logs" yaml:"compress_old_logs"`
}

type config struct {
	// Logging configs
	Logging loggerConfig `json:"logging" yaml:"logging"`

	Display struct {
		// Places is the number of decimal places to round results to, or -1
		// to print them as the calculator displays operands.
		Places int `json:"places" yaml:"places"`
		// Prec is the precision in bits of calculations, or 0 for float64.
		Prec uint `json:"prec" yaml:"prec"`
	} `json:"display" yaml:"display"`

	Plot struct {
		Variable     string  `json:"variable" yaml:"variable"`
		Width        float64 `json:"width" yaml:"width"`
		ContentScale float64 `json:"content_scale" yaml:"content_scale"`
		Scale        float64 `json:"scale" yaml:"scale"`
		Origin       struct {
			X float64 `json:"x" yaml:"x"`
			Y float64 `json:"y" yaml:"y"`
		} `json:"origin" yaml:"origin"`
	} `json:"plot" yaml:"plot"`
}

func defaultConfig() config {
	var conf config
	conf.Logging.LogLevel = "warn"
	conf.Display.Places = -1
	conf.Plot.Variable = "M"
	conf.Plot.Width = 64
	conf.Plot.ContentScale = 1
	conf.Plot.Scale = 8
	conf.Plot.Origin.X = 32
	conf.Plot.Origin.Y = 16
	return conf
}

// readConfig reads a YAML config file over the defaults. An empty path gives
// the defaults.
func readConfig(path string) (config, error) {
	conf := defaultConfig()
	if path == "" {
		return conf, nil
	}
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return conf, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.UnmarshalStrict(yamlFile, &conf); err != nil {
		return conf, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return conf, nil
}

// initLogger installs the default slog logger. Records go to stderr, and
// also to a rotated file if the config asks for one.
func initLogger(c loggerConfig) {
	opts := &slog.HandlerOptions{
		Level:     logLevelFromString(c.LogLevel),
		AddSource: c.IncludeSrc,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				source, _ := a.Value.Any().(*slog.Source)
				if source != nil {
					source.File = filepath.Base(source.File)
					source.Function = strings.TrimPrefix(source.Function, "github.com/zephyrtronium/")
				}
			}
			return a
		},
	}

	var w io.Writer = os.Stderr
	if c.LogToFile && c.Filename != "" {
		logTarget := &lumberjack.Logger{
			Filename:   c.Filename,
			MaxSize:    c.MaxSize, // megabytes
			MaxAge:     c.MaxAge,  // days
			Compress:   c.CompressOldLogs,
			MaxBackups: c.MaxBackups,
		}
		w = io.MultiWriter(os.Stderr, logTarget)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(w, opts)))
}

func logLevelFromString(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
