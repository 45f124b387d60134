package natsort

import (
	"math"
	"strconv"
	"strings"
)

// Compare returns a negative number when a sorts before b, a positive
// number when a sorts after b, and 0 when they are identical.
func Compare(a, b string) int {
	i, j := 0, 0
	zeroTie := 0

	for i < len(a) && j < len(b) {
		aDigit, bDigit := isDigit(a[i]), isDigit(b[j])

		switch {
		case aDigit != bDigit:
			return strings.Compare(a[i:], b[j:])

		case aDigit:
			ai, bj := runEnd(a, i, true), runEnd(b, j, true)
			if c := compareNumeric(a[i:ai], b[j:bj]); c != 0 {
				return c
			}
			if zeroTie == 0 {
				zeroTie = sign((ai - i) - (bj - j))
			}
			i, j = ai, bj

		default:
			ai, bj := runEnd(a, i, false), runEnd(b, j, false)
			if c := strings.Compare(a[i:ai], b[j:bj]); c != 0 {
				return c
			}
			i, j = ai, bj
		}
	}

	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	}
	return zeroTie
}

// CompareNullable is Compare for optional strings. A nil pointer sorts
// before any string; two nil pointers are equal.
func CompareNullable(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return Compare(*a, *b)
}

// compareNumeric compares two non-empty digit runs by value.
func compareNumeric(a, b string) int {
	ta, tb := strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")

	if len(ta) != len(tb) || ta != tb {
		va, errA := strconv.ParseUint(a, 10, 64)
		vb, errB := strconv.ParseUint(b, 10, 64)
		if errA == nil && errB == nil {
			return clampDiff(va, vb)
		}
	}

	// Too long for uint64: longer significant part is larger, otherwise
	// the digits decide.
	if len(ta) != len(tb) {
		return sign(len(ta) - len(tb))
	}
	return strings.Compare(ta, tb)
}

// clampDiff returns va-vb saturated to the int range.
func clampDiff(va, vb uint64) int {
	if va >= vb {
		d := va - vb
		if d > math.MaxInt {
			return math.MaxInt
		}
		return int(d)
	}
	d := vb - va
	if d > math.MaxInt {
		return math.MinInt
	}
	return -int(d)
}

// runEnd returns the index just past the run starting at s[i] whose bytes
// are all digits (digits=true) or all non-digits.
func runEnd(s string, i int, digits bool) int {
	for i < len(s) && isDigit(s[i]) == digits {
		i++
	}
	return i
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
