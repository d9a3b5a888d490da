package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func x12Diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two path list files", cli.ErrUsage)
	}
	from, err := canonLines(args[0])
	if err != nil {
		return err
	}
	to, err := canonLines(args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		from, to = to, from
	}

	del := fmt.Sprintf
	ins := fmt.Sprintf
	if cfg.colorsEnabled(cc.Out) {
		del = color.RedString
		ins = color.GreenString
	}

	diffCfg := diffpatch.New()
	fromRunes, toRunes, lines := diffCfg.DiffLinesToRunes(join(from), join(to))
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	for i := range diffs {
		diff := &diffs[i]
		for _, line := range splitLines(diff.Text) {
			var msg string
			switch diff.Type {
			case diffpatch.DiffDelete:
				msg = del("- %s", line)
			case diffpatch.DiffInsert:
				msg = ins("+ %s", line)
			case diffpatch.DiffEqual:
				msg = "  " + line
			}
			if _, err := fmt.Fprintln(cc.Out, msg); err != nil {
				return err
			}
		}
	}
	return nil
}

func join(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	return strings.Join(paths, "\n") + "\n"
}

func splitLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
