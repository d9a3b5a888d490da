package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"

	"github.com/x12-format/go-x12/debug"
	"github.com/x12-format/go-x12/x12path"
)

func x12Filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		cfg.Filter.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: filter requires an -e expression", cli.ErrUsage)
	}
	prg, err := expr.Compile(cfg.Expr)
	if err != nil {
		return fmt.Errorf("error compiling %q: %w", cfg.Expr, err)
	}
	return eachPath(args, func(raw string) error {
		p, err := x12path.Parse(raw)
		if err != nil {
			return err
		}
		res, err := expr.Run(prg, filterEnv(p))
		if err != nil {
			return fmt.Errorf("error evaluating %q on %s: %w", cfg.Expr, p, err)
		}
		keep, ok := res.(bool)
		if !ok {
			return fmt.Errorf("filter expression returned %T, not bool", res)
		}
		if debug.Filter() {
			debug.Logf("filter: %s -> %v\n", p.String(), keep)
		}
		if keep == cfg.Invert {
			return nil
		}
		_, err = fmt.Fprintln(cc.Out, p.String())
		return err
	})
}

// filterEnv exposes path fields to filter expressions.  Unset indices are
// nil, so "elementIndex == 2" is false for paths without an element index.
func filterEnv(p *x12path.X12Path) map[string]any {
	env := map[string]any{
		"path":            p.String(),
		"refdes":          p.RefDes(),
		"loops":           p.Loops(),
		"segID":           p.SegID(),
		"qualifier":       p.Qualifier(),
		"relative":        p.IsRelative(),
		"elementIndex":    nil,
		"subelementIndex": nil,
	}
	if v := p.ElementIndex(); v != nil {
		env["elementIndex"] = *v
	}
	if v := p.SubelementIndex(); v != nil {
		env["subelementIndex"] = *v
	}
	return env
}
