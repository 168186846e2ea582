// Package sort provides in-place sorting of int32 sequences.
//
// Two algorithms are exposed with identical postconditions (the sequence is
// left in non-decreasing order, as a permutation of its input):
//
//   - BubbleSort: fixed-cost O(n²) adjacent-swap passes, O(1) extra space.
//     Every outer pass runs to completion even on sorted input.
//   - QuickSort: Lomuto partitioning around the last element, driven by a
//     bounded work list instead of recursion. O(n log n) expected,
//     O(n²) on sorted or reverse-sorted input.
//
// Neither sort is stable. Neither allocates.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-seqalgo/seq/contrib/sort"
//
//	func ProcessData(data []int32) {
//	    sort.QuickSort(data)  // In-place ascending sort
//	}
//
//	func CheckSorted(data []int32) bool {
//	    return sort.IsSorted(data)
//	}
package sort
