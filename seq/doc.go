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

// Package seq provides the data model shared by the sequence algorithms:
// bounded views over caller-owned int32 runs, a host linear memory that
// views are carved out of, and the runtime dispatch level the reducers use
// to size their accumulator blocks.
//
// The algorithms themselves live in subpackages:
//
//   - contrib/sort: in-place bubble sort and Lomuto quicksort
//   - contrib/search: binary search over ascending data
//   - contrib/stats: minimum, maximum, sum and average
//   - abi: the (offset, length) host boundary with explicit fault results
//
// Basic usage:
//
//	import "github.com/ajroetker/go-seqalgo/seq"
//
//	mem, _ := seq.NewMemory(64 * 1024)
//	_ = mem.Write(1024, []int32{5, 3, 8})
//	view, err := mem.Region(1024, 3)
//	if err != nil {
//	    // offset/length did not describe addressable memory
//	}
//	sort.QuickSort(view.Int32s())
package seq
