package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/x12-format/go-x12/x12path"
)

type pathColors struct {
	Loop func(string, ...any) string
	Seg  func(string, ...any) string
	Qual func(string, ...any) string
	Idx  func(string, ...any) string
	Sep  func(string, ...any) string
}

func newPathColors(enabled bool) *pathColors {
	if !enabled {
		return &pathColors{
			Loop: fmt.Sprintf,
			Seg:  fmt.Sprintf,
			Qual: fmt.Sprintf,
			Idx:  fmt.Sprintf,
			Sep:  fmt.Sprintf,
		}
	}
	return &pathColors{
		Loop: color.RGB(128, 168, 196).SprintfFunc(),
		Seg:  color.RGB(196, 96, 16).SprintfFunc(),
		Qual: color.RGB(8, 196, 16).SprintfFunc(),
		Idx:  color.RGB(128, 216, 236).SprintfFunc(),
		Sep:  color.RGB(255, 0, 196).SprintfFunc(),
	}
}

// colorPath renders the canonical form of p with one color per field kind.
func colorPath(colors *pathColors, p *x12path.X12Path) string {
	var b strings.Builder
	if !p.IsRelative() {
		b.WriteString(colors.Sep(x12path.Sep))
	}
	loops := p.Loops()
	for i, loop := range loops {
		if i > 0 {
			b.WriteString(colors.Sep(x12path.Sep))
		}
		b.WriteString(colors.Loop("%s", loop))
	}
	if p.SegID() != "" {
		if len(loops) > 0 {
			b.WriteString(colors.Sep(x12path.Sep))
		}
		b.WriteString(colors.Seg("%s", p.SegID()))
		if p.Qualifier() != "" {
			b.WriteString(colors.Qual("[%s]", p.Qualifier()))
		}
	}
	if idx := p.ElementIndex(); idx != nil {
		b.WriteString(colors.Idx("%02d", *idx))
	}
	if idx := p.SubelementIndex(); idx != nil {
		b.WriteString(colors.Sep("-"))
		b.WriteString(colors.Idx("%d", *idx))
	}
	return b.String()
}
