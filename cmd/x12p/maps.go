package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/x12-format/go-x12/params"
)

func x12Maps(cfg *MapsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Maps.Parse(cc, args)
	if err != nil {
		cfg.Maps.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: maps takes no arguments", cli.ErrUsage)
	}
	ps, err := params.Load()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, ps.MapPath())
	return err
}
