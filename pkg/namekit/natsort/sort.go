package natsort

import (
	"slices"
	"sort"
)

// Less reports whether a sorts strictly before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Sort sorts s in place in natural order.
func Sort(s []string) {
	slices.SortFunc(s, Compare)
}

// SortStable sorts s in place in natural order, keeping the original order
// of elements that compare equal.
func SortStable(s []string) {
	slices.SortStableFunc(s, Compare)
}

// Sorted returns a naturally ordered copy of s. The input is not modified.
func Sorted(s []string) []string {
	out := slices.Clone(s)
	Sort(out)
	return out
}

// Strings attaches natural ordering to []string for use with the sort package.
type Strings []string

// Compile-time interface check.
var _ sort.Interface = Strings(nil)

func (s Strings) Len() int           { return len(s) }
func (s Strings) Less(i, j int) bool { return Less(s[i], s[j]) }
func (s Strings) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
