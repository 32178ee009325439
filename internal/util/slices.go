package util

import "golang.org/x/exp/slices"

// FindFunc returns the first element of s that satisfies f.
func FindFunc[E any](s []E, f func(E) bool) (e E, ok bool) {
	i := slices.IndexFunc(s, f)
	if i < 0 {
		return e, false
	}
	return s[i], true
}
