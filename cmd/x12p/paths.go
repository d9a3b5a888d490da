package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/x12-format/go-x12/x12path"
)

// eachPath calls fn for each input path.  An arg names a path list file when
// a regular file by that name exists ("-" is stdin) and is otherwise taken as
// a literal path.  With no args, paths are read from stdin, one per line;
// blank lines are skipped.
func eachPath(args []string, fn func(raw string) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if arg == "-" {
			if err := eachLine(os.Stdin, fn); err != nil {
				return err
			}
			continue
		}
		if fi, err := os.Stat(arg); err == nil && fi.Mode().IsRegular() {
			f, err := os.Open(arg)
			if err != nil {
				return fmt.Errorf("error opening %s: %w", arg, err)
			}
			err = eachLine(f, fn)
			f.Close()
			if err != nil {
				return err
			}
			continue
		}
		if err := fn(arg); err != nil {
			return err
		}
	}
	return nil
}

func eachLine(r io.Reader, fn func(raw string) error) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return sc.Err()
}

// canonLines reads a path list file ("-" for stdin) and returns the canonical
// form of each non-blank line.
func canonLines(arg string) ([]string, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	var res []string
	err := eachLine(r, func(raw string) error {
		p, err := x12path.Parse(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		res = append(res, p.String())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
