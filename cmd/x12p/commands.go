package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "x12p").
		WithSynopsis("x12p [opts] command [opts]").
		WithDescription("x12p is a tool for working with x12 path addresses.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return x12pMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			ParseCommand(cfg),
			RefDesCommand(cfg),
			ChildCommand(cfg),
			FilterCommand(cfg),
			DiffCommand(cfg),
			MapsCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithSynopsis("fmt [paths|files|-]").
		WithDescription("print paths in canonical form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return x12Fmt(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func ParseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParseConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("parse").
		WithAliases("p").
		WithSynopsis("parse [paths|files|-]").
		WithDescription("parse paths and show their structure").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return x12Parse(cfg, cc, args)
		})
	cfg.Parse = cmd
	return cmd
}

func RefDesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RefDesConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("refdes").
		WithAliases("rd").
		WithSynopsis("refdes [paths|files|-]").
		WithDescription("print the ref designator portion of paths").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return x12RefDes(cfg, cc, args)
		})
	cfg.RefDes = cmd
	return cmd
}

func ChildCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ChildConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("child").
		WithSynopsis("child root candidate...").
		WithDescription("test whether candidates address locations below root").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return x12Child(cfg, cc, args)
		})
	cfg.Child = cmd
	return cmd
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "e",
		Description: "filter expression over path fields",
		Type: cli.NamedFuncOpt(func(_ *cli.Context, a string) (any, error) {
			cfg.Expr = a
			return a, nil
		}, "(expr)"),
	})
	cmd := cli.NewCommand("filter").
		WithSynopsis("filter -e expr [paths|files|-]").
		WithDescription("print paths whose fields satisfy an expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return x12Filter(cfg, cc, args)
		})
	cfg.Filter = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff from to").
		WithDescription("diff two path list files after canonicalization").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return x12Diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func MapsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MapsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("maps").
		WithSynopsis("maps").
		WithDescription("print the resolved map definition directory").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return x12Maps(cfg, cc, args)
		})
	cfg.Maps = cmd
	return cmd
}
