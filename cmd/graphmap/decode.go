package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/graphmap/encode"
	"github.com/signadot/graphmap/filter"
	"github.com/signadot/graphmap/gomap"
	"github.com/signadot/graphmap/parse"
	"github.com/signadot/graphmap/patch"

	"github.com/davecgh/go-spew/spew"
	"github.com/scott-cotton/cli"
	"golang.org/x/sync/errgroup"
)

var spewCfg = &spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

type decodeJob struct {
	kind  gomap.Kind
	where *filter.Filter
	patch *patch.Patch
}

func decode(cfg *DecodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decode.Parse(cc, args)
	if err != nil {
		cfg.Decode.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	job := &decodeJob{}
	job.kind, err = lookupKind(cfg.Type)
	if err != nil {
		return err
	}
	if cfg.Where != "" {
		job.where, err = filter.Compile(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	if cfg.Patch != "" {
		if cfg.Y {
			return fmt.Errorf("%w: -patch applies to json input only", cli.ErrUsage)
		}
		d, err := os.ReadFile(cfg.Patch)
		if err != nil {
			return err
		}
		job.patch, err = patch.Decode(d)
		if err != nil {
			return fmt.Errorf("error reading patch %s: %w", cfg.Patch, err)
		}
	}
	if len(args) == 0 {
		args = []string{"-"}
	}

	outs := make([]bytes.Buffer, len(args))
	eg := new(errgroup.Group)
	if cfg.Jobs > 0 {
		eg.SetLimit(cfg.Jobs)
	}
	for i, arg := range args {
		eg.Go(func() error {
			return decodeArg(cfg, cc, job, arg, &outs[i])
		})
	}
	err = eg.Wait()
	for i := range outs {
		if _, werr := cc.Out.Write(outs[i].Bytes()); werr != nil {
			return werr
		}
	}
	return err
}

func decodeArg(cfg *DecodeConfig, cc *cli.Context, job *decodeJob, arg string, out *bytes.Buffer) error {
	d, err := readArg(cc, arg)
	if err != nil {
		return err
	}
	if job.patch != nil {
		d, err = job.patch.Apply(d)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
	}
	node, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		cfg.rec.ObserveDecode(job.kind.Name(), err)
		return fmt.Errorf("error parsing %s: %w", arg, err)
	}
	var vs []any
	if cfg.List {
		vs, err = job.kind.DecodeListAny(node, cfg.decodeOpts()...)
	} else {
		var v any
		v, err = job.kind.DecodeAny(node, cfg.decodeOpts()...)
		vs = []any{v}
	}
	cfg.rec.ObserveDecode(job.kind.Name(), err)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	theLog.Debug("decoded", "file", arg, "kind", job.kind.Name(), "count", len(vs))

	encOpts := append(cfg.encOpts(cc.Out),
		encode.EncodeName(job.kind.Name()),
		encode.EncodeLines(cfg.Lines))
	for _, v := range vs {
		snap, err := job.kind.SnapshotAny(v)
		if err != nil {
			return err
		}
		if job.where != nil {
			ok, err := job.where.Match(snap)
			if err != nil {
				return fmt.Errorf("error filtering %s: %w", arg, err)
			}
			if !ok {
				continue
			}
		}
		if cfg.Spew {
			spewCfg.Fdump(out, v)
			continue
		}
		if err := encode.Encode(snap, out, encOpts...); err != nil {
			return err
		}
		if !cfg.Lines {
			out.WriteByte('\n')
		}
	}
	return nil
}
