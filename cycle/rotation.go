// SPDX-License-Identifier: MIT

package cycle

import "sort"

// reversed returns a new slice with the elements of s in reverse order.
func reversed(s []int) []int {
	out := make([]int, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// compare orders two int slices lexicographically; a shorter prefix sorts first.
func compare(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}

// minimalRotation is Booth's algorithm: the lexicographically least rotation
// of s in O(n), returned as a fresh slice.
func minimalRotation(s []int) []int {
	n := len(s)
	doubled := make([]int, 0, 2*n)
	doubled = append(append(doubled, s...), s...)

	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			// here i == -1
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	out := make([]int, n)
	copy(out, doubled[k:k+n])

	return out
}

// SortCanonical replaces every cycle by its canonical form and orders the
// set by (length, walk). The input slice is not modified.
func SortCanonical(cs []Cycle) []Cycle {
	out := make([]Cycle, len(cs))
	for i, c := range cs {
		out[i] = c.Canonical()
	}
	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) < len(out[j])
		}

		return compare(out[i], out[j]) < 0
	})

	return out
}
