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

// Package stats provides linear-scan reducers over int32 sequences:
// minimum, maximum, sum and arithmetic mean.
//
// All reducers are pure reads and never allocate. Empty input is not an
// error: Min and Max return 0, Sum returns 0 and Average returns 0.0. Callers
// must treat the Min/Max of an empty sequence as meaningless.
//
// The reducers process full blocks of seq.MaxLanes() elements with one
// accumulator per lane, fold the lanes together, then handle the tail with
// scalar code.
package stats

import "github.com/ajroetker/go-seqalgo/seq"

// Min returns the smallest element of data, or 0 if data is empty.
func Min(data []int32) int32 {
	n := len(data)
	if n == 0 {
		return 0
	}

	lanes := seq.MaxLanes()

	// If slice is shorter than one block, use scalar code
	if n < lanes {
		return scalarMin(data)
	}

	var acc [seq.MaxLaneCount]int32
	copy(acc[:lanes], data)

	// Process full blocks
	i := lanes
	for ; i+lanes <= n; i += lanes {
		block := data[i : i+lanes]
		for j, v := range block {
			if v < acc[j] {
				acc[j] = v
			}
		}
	}

	// Reduce lanes, then the tail
	result := scalarMin(acc[:lanes])
	for ; i < n; i++ {
		if data[i] < result {
			result = data[i]
		}
	}
	return result
}

// Max returns the largest element of data, or 0 if data is empty.
func Max(data []int32) int32 {
	n := len(data)
	if n == 0 {
		return 0
	}

	lanes := seq.MaxLanes()

	if n < lanes {
		return scalarMax(data)
	}

	var acc [seq.MaxLaneCount]int32
	copy(acc[:lanes], data)

	i := lanes
	for ; i+lanes <= n; i += lanes {
		block := data[i : i+lanes]
		for j, v := range block {
			if v > acc[j] {
				acc[j] = v
			}
		}
	}

	result := scalarMax(acc[:lanes])
	for ; i < n; i++ {
		if data[i] > result {
			result = data[i]
		}
	}
	return result
}

// Sum returns the sum of data in an int64 accumulator, or 0 if data is
// empty. An int64 holds the sum of 2^32 elements of any int32 value, so the
// result is exact for every sequence a host can describe with an int32
// length.
func Sum(data []int32) int64 {
	n := len(data)
	lanes := seq.MaxLanes()

	var acc [seq.MaxLaneCount]int64
	i := 0
	for ; i+lanes <= n; i += lanes {
		block := data[i : i+lanes]
		for j, v := range block {
			acc[j] += int64(v)
		}
	}

	var result int64
	for _, s := range acc[:lanes] {
		result += s
	}
	for ; i < n; i++ {
		result += int64(data[i])
	}
	return result
}

// Average returns the arithmetic mean of data, or 0.0 if data is empty.
// The sum is accumulated exactly in int64 and divided as float64.
func Average(data []int32) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return float64(Sum(data)) / float64(len(data))
}

func scalarMin(data []int32) int32 {
	result := data[0]
	for _, v := range data[1:] {
		if v < result {
			result = v
		}
	}
	return result
}

func scalarMax(data []int32) int32 {
	result := data[0]
	for _, v := range data[1:] {
		if v > result {
			result = v
		}
	}
	return result
}
