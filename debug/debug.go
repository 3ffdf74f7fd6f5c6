package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Scan     bool
	Build    bool
	Classify bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("REDLEX_DEBUG_SCAN")
	d.Build = boolEnv("REDLEX_DEBUG_BUILD")
	d.Classify = boolEnv("REDLEX_DEBUG_CLASSIFY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Scan enables tracing of each dispatched token.
func Scan() bool {
	return d.Scan
}

// Build enables tracing of tree construction.
func Build() bool {
	return d.Build
}

func Classify() bool {
	return d.Classify
}
