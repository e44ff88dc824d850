package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Get     bool
	Set     bool
	Delete  bool
	Extract bool
	Flat    bool
	Keys    bool
	Merge   bool
	Eval    bool
	Fetch   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Get = boolEnv("OBJPATH_DEBUG_GET")
	d.Set = boolEnv("OBJPATH_DEBUG_SET")
	d.Delete = boolEnv("OBJPATH_DEBUG_DELETE")
	d.Extract = boolEnv("OBJPATH_DEBUG_EXTRACT")
	d.Flat = boolEnv("OBJPATH_DEBUG_FLAT")
	d.Keys = boolEnv("OBJPATH_DEBUG_KEYS")
	d.Merge = boolEnv("OBJPATH_DEBUG_MERGE")
	d.Eval = boolEnv("OBJPATH_DEBUG_EVAL")
	d.Fetch = boolEnv("OBJPATH_DEBUG_FETCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Get() bool {
	return d.Get
}
func Set() bool {
	return d.Set
}
func Delete() bool {
	return d.Delete
}
func Extract() bool {
	return d.Extract
}
func Flat() bool {
	return d.Flat
}
func Keys() bool {
	return d.Keys
}
func Merge() bool {
	return d.Merge
}
func Eval() bool {
	return d.Eval
}
func Fetch() bool {
	return d.Fetch
}
