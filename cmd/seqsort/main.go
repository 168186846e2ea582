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

// Command seqsort runs the sequence algorithms over numbers given on the
// command line.
//
// Usage:
//
//	seqsort bubble 64 34 25 12 22 11 90
//	seqsort quick 64 34 25 12 22 11 90
//	seqsort bsearch 25 64 34 25 12 22 11 90   # sorts, then searches for 25
//	seqsort min|max|avg <numbers...>
//	seqsort info
//	seqsort --offset 2048 --verbose quick 5 -3 2
//
// Flags go before the algorithm name; everything after it is taken as
// numbers, so negative values need no quoting. The numbers are written into
// a linear memory at a fixed byte offset (--offset, default 1024) and the
// algorithms are invoked through the abi package the way an embedding host
// would call them. Arguments that do not start with an integer are ignored.
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "seqsort: %v\n", err)
		os.Exit(1)
	}
}
