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

package sort_test

import (
	"fmt"

	"github.com/ajroetker/go-seqalgo/seq/contrib/sort"
)

func ExampleQuickSort() {
	data := []int32{5, 3, 8, 1, 9, 2}
	sort.QuickSort(data)
	fmt.Println(data)
	// Output: [1 2 3 5 8 9]
}

func ExampleBubbleSort() {
	data := []int32{5, 3, 8, 1, 9, 2}
	sort.BubbleSort(data)
	fmt.Println(data)
	// Output: [1 2 3 5 8 9]
}
