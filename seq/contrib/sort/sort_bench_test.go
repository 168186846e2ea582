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

import (
	"math/rand"
	"slices"
	"testing"
)

// Generate random data for benchmarks
func generateInt32(n int) []int32 {
	data := make([]int32, n)
	for i := range data {
		data[i] = rand.Int31n(10000) - 5000
	}
	return data
}

func BenchmarkQuickSort_100(b *testing.B) {
	benchmarkSort(b, 100, QuickSort)
}

func BenchmarkQuickSort_1000(b *testing.B) {
	benchmarkSort(b, 1000, QuickSort)
}

func BenchmarkQuickSort_10000(b *testing.B) {
	benchmarkSort(b, 10000, QuickSort)
}

func BenchmarkQuickSort_100000(b *testing.B) {
	benchmarkSort(b, 100000, QuickSort)
}

func BenchmarkBubbleSort_100(b *testing.B) {
	benchmarkSort(b, 100, BubbleSort)
}

func BenchmarkBubbleSort_1000(b *testing.B) {
	benchmarkSort(b, 1000, BubbleSort)
}

// Stdlib comparison
func BenchmarkStdlib_10000(b *testing.B) {
	benchmarkSort(b, 10000, slices.Sort[[]int32])
}

// QuickSort on its worst-case pivot pattern
func BenchmarkQuickSort_Sorted_1000(b *testing.B) {
	ref := make([]int32, 1000)
	for i := range ref {
		ref[i] = int32(i)
	}
	data := make([]int32, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		QuickSort(data)
	}
}

func benchmarkSort(b *testing.B, n int, sortFn func([]int32)) {
	// Generate reference data
	ref := generateInt32(n)
	data := make([]int32, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		sortFn(data)
	}
}
