package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// colorsEnabled reports whether output to w should be colored: forced by
// -color, otherwise on when w is a terminal.
func (cfg *MainConfig) colorsEnabled(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) colors(w io.Writer) *pathColors {
	return newPathColors(cfg.colorsEnabled(w))
}

type FmtConfig struct {
	*MainConfig

	Fmt *cli.Command
}

type ParseConfig struct {
	*MainConfig

	Fields bool `cli:"name=fields desc='print the structured field breakdown'"`
	Parse  *cli.Command
}

type RefDesConfig struct {
	*MainConfig

	RefDes *cli.Command
}

type ChildConfig struct {
	*MainConfig

	Child *cli.Command
}

type FilterConfig struct {
	*MainConfig
	Invert bool `cli:"name=v desc='print paths not matching the expression'"`
	Expr   string

	Filter *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type MapsConfig struct {
	*MainConfig

	Maps *cli.Command
}
