package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Convert bool
	LSP     bool
	Eval    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("CONFCONV_DEBUG_PARSE")
	d.Convert = boolEnv("CONFCONV_DEBUG_CONVERT")
	d.LSP = boolEnv("CONFCONV_DEBUG_LSP")
	d.Eval = boolEnv("CONFCONV_DEBUG_EVAL")
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
func Convert() bool {
	return d.Convert
}
func LSP() bool {
	return d.LSP
}
func Eval() bool {
	return d.Eval
}
