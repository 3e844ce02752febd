package main

import (
	"fmt"

	"github.com/signadot/graphmap/encode"
	"github.com/signadot/graphmap/graph"
	"github.com/signadot/graphmap/ir"

	"github.com/scott-cotton/cli"
)

func fields(cfg *FieldsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fields.Parse(cc, args)
	if err != nil {
		cfg.Fields.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: fields takes no arguments, got %v", cli.ErrUsage, args)
	}
	kind, err := lookupKind(cfg.Type)
	if err != nil {
		return err
	}
	encOpts := cfg.encOpts(cc.Out)
	for _, b := range kind.Bindings() {
		tolerated := make([]*ir.Node, len(b.Tolerated))
		for i, t := range b.Tolerated {
			tolerated[i] = ir.FromString(t.String())
		}
		kvs := []ir.KeyVal{
			{Key: "wire", Val: ir.FromString(b.Wire)},
			{Key: "shape", Val: ir.FromString(b.Shape.String())},
		}
		if len(tolerated) != 0 {
			kvs = append(kvs, ir.KeyVal{Key: "tolerate", Val: ir.FromSlice(tolerated)})
		}
		if b.Envelope != "" {
			kvs = append(kvs, ir.KeyVal{Key: "unwrap", Val: ir.FromString(b.Envelope)})
		}
		if b.Deprecated {
			kvs = append(kvs, ir.KeyVal{Key: "deprecated", Val: ir.FromBool(true)})
		}
		line := encode.String(ir.FromKeyVals(kvs), append(encOpts, encode.EncodeName(b.Attr))...)
		if _, err := fmt.Fprintln(cc.Out, line); err != nil {
			return err
		}
	}
	return nil
}

func kinds(cfg *KindsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Kinds.Parse(cc, args)
	if err != nil {
		cfg.Kinds.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: kinds takes no arguments, got %v", cli.ErrUsage, args)
	}
	for _, name := range graph.Kinds() {
		if _, err := fmt.Fprintln(cc.Out, name); err != nil {
			return err
		}
	}
	return nil
}
