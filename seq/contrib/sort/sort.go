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

package sort

// BubbleSort sorts data in place with repeated adjacent compare-and-swap
// passes. The outer loop always runs len(data)-1 passes and the inner pass
// shrinks by one each time; there is no early exit on a swap-free pass.
func BubbleSort(data []int32) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if data[j] > data[j+1] {
				data[j], data[j+1] = data[j+1], data[j]
			}
		}
	}
}

// maxPending bounds the quicksort work list. Deferring only the larger side
// of each partition keeps at most log2(n)+1 ranges pending, which is below
// 64 for any slice length.
const maxPending = 64

// span is an inclusive sub-range [lo, hi] awaiting partitioning.
type span struct {
	lo, hi int
}

// QuickSort sorts data in place using Lomuto partitioning with the last
// element of each sub-range as pivot.
//
// Sub-ranges are kept on a fixed-size work list rather than the call stack:
// the smaller side of each partition is processed immediately and the larger
// side deferred. The pivot choice is unchanged from the textbook scheme, so
// sorted and reverse-sorted input still take O(n²) time, but stack use is
// constant.
func QuickSort(data []int32) {
	if len(data) <= 1 {
		return
	}

	var pending [maxPending]span
	top := 0
	lo, hi := 0, len(data)-1

	for {
		for lo < hi {
			p := Partition(data, lo, hi)
			if p-lo < hi-p {
				pending[top] = span{p + 1, hi}
				hi = p - 1
			} else {
				pending[top] = span{lo, p - 1}
				lo = p + 1
			}
			top++
		}

		if top == 0 {
			return
		}
		top--
		lo, hi = pending[top].lo, pending[top].hi
	}
}

// Partition rearranges data[lo:hi+1] around the pivot data[hi] (Lomuto
// scheme) and returns the pivot's final index p. Afterwards every element of
// data[lo:p] is strictly less than the pivot and every element of
// data[p+1:hi+1] is greater than or equal to it.
//
// lo and hi are inclusive and must satisfy 0 <= lo <= hi < len(data).
func Partition(data []int32, lo, hi int) int {
	pivot := data[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if data[j] < pivot {
			data[i], data[j] = data[j], data[i]
			i++
		}
	}
	data[i], data[hi] = data[hi], data[i]
	return i
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted(data []int32) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
