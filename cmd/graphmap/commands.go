package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "graphmap").
		WithSynopsis("graphmap [opts] command [opts]").
		WithDescription("graphmap decodes graph API responses into typed objects.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return graphmapMain(cfg, cc, args)
		}).
		WithSubs(
			DecodeCommand(cfg),
			FieldsCommand(cfg),
			KindsCommand(cfg),
			DiffCommand(cfg))
}

func DecodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DecodeConfig{MainConfig: mainCfg, Jobs: 4}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Decode, "decode").
		WithAliases("d", "de").
		WithSynopsis("decode -type <kind> [opts] [files]").
		WithDescription(decodeDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return decode(cfg, cc, args)
		})
}

const decodeDescription = `decode reads graph API responses and prints the decoded objects.

Each file (stdin when there are none, or for '-') holds one object, or
with -list a list of objects: a JSON array, a {"data": [...]} envelope or
an empty object.

Fields whose values do not have the expected shape are left empty; use -v
to log them and -stats to count them.

-where keeps only objects for which an expr expression is true. The
object's attributes are available as doc, for example

  graphmap decode -type Photo -where 'doc.width > 100 && len(doc.tags) > 0' photo.json

-patch applies a JSON patch (an RFC 6902 list or an RFC 7386 merge patch)
to each input before it is decoded, which is handy for checking how a
type copes with a changed response shape.`

func FieldsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FieldsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fields, "fields").
		WithAliases("f").
		WithSynopsis("fields -type <kind>").
		WithDescription("list the field bindings of a kind").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fields(cfg, cc, args)
		})
}

func KindsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KindsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Kinds, "kinds").
		WithAliases("k").
		WithSynopsis("kinds").
		WithDescription("list the kinds that can be decoded").
		WithRun(func(cc *cli.Context, args []string) error {
			return kinds(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("di").
		WithSynopsis("diff -type <kind> a b").
		WithDescription("show attribute differences between two decoded objects").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
