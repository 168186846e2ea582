// Copyright 2025 go-seqalgo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package search provides binary search over ascending int32 sequences.
//
// The caller guarantees the input is sorted in non-decreasing order (for
// example by seq/contrib/sort). On unsorted input the result is unspecified
// but always either NotFound or a valid index; the search never faults.
package search

// NotFound is returned when no element equals the target. It is distinct
// from every valid index.
const NotFound = -1

// BinarySearch returns the index of an element of data equal to target, or
// NotFound.
//
// Bounds are inclusive and the midpoint is computed as low+(high-low)/2.
// When several elements equal target, the index returned is whichever one
// the bisection reaches first: neither the first nor the last occurrence is
// guaranteed.
func BinarySearch(data []int32, target int32) int {
	low, high := 0, len(data)-1
	for low <= high {
		mid := low + (high-low)/2
		switch v := data[mid]; {
		case v == target:
			return mid
		case v < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return NotFound
}

// Contains reports whether sorted data holds target.
func Contains(data []int32, target int32) bool {
	return BinarySearch(data, target) != NotFound
}
