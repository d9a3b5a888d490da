package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/x12-format/go-x12/x12path"
)

func x12Fmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return eachPath(args, func(raw string) error {
		p, err := x12path.Parse(raw)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cc.Out, p.String())
		return err
	})
}

func x12RefDes(cfg *RefDesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.RefDes.Parse(cc, args)
	if err != nil {
		cfg.RefDes.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return eachPath(args, func(raw string) error {
		p, err := x12path.Parse(raw)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cc.Out, p.RefDes())
		return err
	})
}

func x12Parse(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		cfg.Parse.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	colors := cfg.colors(cc.Out)
	return eachPath(args, func(raw string) error {
		p, err := x12path.Parse(raw)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(cc.Out, colorPath(colors, p)); err != nil {
			return err
		}
		if !cfg.Fields {
			return nil
		}
		return writeFields(cc, p)
	})
}

func writeFields(cc *cli.Context, p *x12path.X12Path) error {
	rows := []struct {
		name, val string
	}{
		{"loops", strings.Join(p.Loops(), " ")},
		{"segment", p.SegID()},
		{"qualifier", p.Qualifier()},
		{"element", fmtIdx(p.ElementIndex())},
		{"subelement", fmtIdx(p.SubelementIndex())},
		{"relative", strconv.FormatBool(p.IsRelative())},
	}
	for _, row := range rows {
		if row.val == "" {
			continue
		}
		if _, err := fmt.Fprintf(cc.Out, "  %-11s %s\n", row.name, row.val); err != nil {
			return err
		}
	}
	return nil
}

func fmtIdx(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func x12Child(cfg *ChildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Child.Parse(cc, args)
	if err != nil {
		cfg.Child.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: child requires a root path and at least one candidate", cli.ErrUsage)
	}
	root, err := x12path.Parse(args[0])
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		cand, err := x12path.Parse(arg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cc.Out, "%s\t%v\n", cand, root.IsChildPath(cand.String()))
		if err != nil {
			return err
		}
	}
	return nil
}
