// SPDX-License-Identifier: MIT

package sparse

// OffsetsFromCounts turns per-lane occupancy counts into the compressed
// offsets array: len(counts)+1 entries, offsets[0] = 0, offsets[k+1] =
// offsets[k] + counts[k]. Counts are non-negative by construction in every
// caller, so there is no error path.
//
// Complexity: O(len(counts)).
func OffsetsFromCounts(counts []int) []int {
	offsets := make([]int, len(counts)+1)
	acc := 0
	for k, n := range counts {
		acc += n
		offsets[k+1] = acc
	}

	return offsets
}
