package main

import (
	"fmt"

	"github.com/signadot/graphmap/ir"
	"github.com/signadot/graphmap/libdiff"
	"github.com/signadot/graphmap/parse"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	kind, err := lookupKind(cfg.Type)
	if err != nil {
		return err
	}
	var snaps [2]*ir.Node
	for i, arg := range args {
		d, err := readArg(cc, arg)
		if err != nil {
			return err
		}
		node, err := parse.Parse(d, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		v, err := kind.DecodeAny(node, cfg.decodeOpts()...)
		cfg.rec.ObserveDecode(kind.Name(), err)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		snaps[i], err = kind.SnapshotAny(v)
		if err != nil {
			return err
		}
	}
	changes := libdiff.Diff(snaps[0], snaps[1])
	for _, c := range changes {
		if _, err := fmt.Fprintln(cc.Out, c); err != nil {
			return err
		}
	}
	if len(changes) != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
