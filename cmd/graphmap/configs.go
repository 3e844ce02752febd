package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/signadot/graphmap/encode"
	"github.com/signadot/graphmap/format"
	"github.com/signadot/graphmap/gomap"
	"github.com/signadot/graphmap/graph"
	"github.com/signadot/graphmap/metrics"
	"github.com/signadot/graphmap/parse"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Y       bool `cli:"name=y aliases=yaml desc='read input as yaml'"`
	Color   bool `cli:"name=color desc='encode with color'"`
	Verbose bool `cli:"name=v desc='log fields with unexpected shapes'"`
	Stats   bool `cli:"name=stats desc='print decode and mismatch counters on exit'"`

	reg *prometheus.Registry
	rec *metrics.Recorder

	Main *cli.Command
}

func (cfg *MainConfig) init() {
	cfg.reg = prometheus.NewRegistry()
	cfg.rec = metrics.New(cfg.reg)
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.Y {
		return []parse.ParseOption{parse.ParseFormat(format.YAMLFormat)}
	}
	return []parse.ParseOption{parse.ParseFormat(format.JSONFormat)}
}

func (cfg *MainConfig) decodeOpts() []gomap.DecodeOption {
	res := []gomap.DecodeOption{
		gomap.WithParseOptions(cfg.parseOpts()...),
	}
	if cfg.rec != nil {
		res = append(res, gomap.WithMismatchHook(cfg.rec.Hook()))
	}
	if cfg.Verbose {
		res = append(res, gomap.WithMismatchHook(gomap.LogMismatches(theLog)))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

func lookupKind(name string) (gomap.Kind, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: -type is required", cli.ErrUsage)
	}
	kind, err := graph.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return kind, nil
}

type DecodeConfig struct {
	*MainConfig
	Type string `cli:"name=type aliases=t desc='kind of object, see the kinds command'"`

	List  bool   `cli:"name=list aliases=l desc='decode a list of objects'"`
	Where string `cli:"name=where aliases=w desc='only print objects matching this expression'"`
	Patch string `cli:"name=patch aliases=p desc='JSON patch file to apply to each input'"`
	Lines bool   `cli:"name=lines desc='print one attribute per line'"`
	Spew  bool   `cli:"name=spew desc='dump the decoded Go values'"`
	Jobs  int    `cli:"name=j desc='number of files to decode in parallel'"`

	Decode *cli.Command
}

type FieldsConfig struct {
	*MainConfig
	Type string `cli:"name=type aliases=t desc='kind of object, see the kinds command'"`

	Fields *cli.Command
}

type KindsConfig struct {
	*MainConfig

	Kinds *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Type string `cli:"name=type aliases=t desc='kind of object, see the kinds command'"`

	Diff *cli.Command
}
