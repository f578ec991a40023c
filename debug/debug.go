package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Simp   bool
	Force  bool
	Links  bool
	Inline bool
	Encode bool
}

var d *debug

func init() {
	d = &debug{}
	d.Simp = boolEnv("COLORC_DEBUG_SIMP")
	d.Force = boolEnv("COLORC_DEBUG_FORCE")
	d.Links = boolEnv("COLORC_DEBUG_LINKS")
	d.Inline = boolEnv("COLORC_DEBUG_INLINE")
	d.Encode = boolEnv("COLORC_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Simp() bool {
	return d.Simp
}
func Force() bool {
	return d.Force
}
func Links() bool {
	return d.Links
}
func Inline() bool {
	return d.Inline
}
func Encode() bool {
	return d.Encode
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
