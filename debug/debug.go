package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Merge bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("NCCL_DEBUG_PARSE")
	d.Merge = boolEnv("NCCL_DEBUG_MERGE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Merge() bool {
	return d.Merge
}
