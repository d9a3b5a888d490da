package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Path   bool
	Params bool
	Filter bool
}

var d *debug

func init() {
	d = &debug{}
	d.Path = boolEnv("X12_DEBUG_PATH")
	d.Params = boolEnv("X12_DEBUG_PARAMS")
	d.Filter = boolEnv("X12_DEBUG_FILTER")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Path() bool {
	return d.Path
}
func Params() bool {
	return d.Params
}
func Filter() bool {
	return d.Filter
}
