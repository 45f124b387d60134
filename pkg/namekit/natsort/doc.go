// Package natsort orders strings so that embedded digit runs compare by
// numeric value instead of character by character.
//
// # Basic Usage
//
//	natsort.Compare("A2", "A10")  // negative: 2 < 10
//	natsort.Compare("A10", "A2")  // positive
//	natsort.Compare("A1", "A1")   // 0
//
//	names := []string{"node10", "node2", "node1"}
//	natsort.Sort(names) // [node1 node2 node10]
//
// Compare plugs straight into slices.SortFunc:
//
//	slices.SortFunc(names, natsort.Compare)
//
// # Nullable Inputs
//
// CompareNullable accepts *string. A nil pointer sorts before any string and
// two nil pointers are equal.
//
// # Ordering Rules
//
// Both strings are scanned left to right and split into runs of ASCII digits
// and runs of everything else:
//   - digit run vs digit run: compared by numeric value (any length)
//   - other run vs other run: compared byte-wise
//   - digit vs non-digit at the same step: the remaining suffixes are compared
//     byte-wise
//   - a string that runs out first sorts first
//
// Runs with equal value but different leading zeros ("07" vs "7") only break
// the tie when nothing else differs; the shorter run sorts first.
//
// Only the sign of the result is part of the contract. When two numeric runs
// differ and both fit in a uint64 the magnitude is the difference of their
// values, otherwise results are -1 or +1.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package natsort
