// Package util holds small helpers shared by the command-line tools.
package util

import (
	"flag"
	"strings"
)

// Flag registers value as a flag on the default flag set and returns
// it.
func Flag[T flag.Value](name string, value T, usage string) T {
	flag.Var(value, name, usage)
	return value
}

type stringsFlag []string

func (s stringsFlag) String() string {
	return strings.Join(s, ",")
}

// Set splits a comma-separated list, dropping blank entries.
func (s *stringsFlag) Set(v string) error {
	*s = (*s)[:0]
	for _, f := range strings.Split(v, ",") {
		f = strings.TrimSpace(f)
		if f != "" {
			*s = append(*s, f)
		}
	}
	return nil
}

// StringsFlag registers a flag holding a comma-separated list of
// strings.
func StringsFlag(name string, value []string, usage string) *[]string {
	return (*[]string)(Flag(name, (*stringsFlag)(&value), usage))
}
