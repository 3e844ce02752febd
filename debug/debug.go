package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Decode bool
	Parse  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("GRAPHMAP_DEBUG_DECODE")
	d.Parse = boolEnv("GRAPHMAP_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}

func Parse() bool {
	return d.Parse
}
