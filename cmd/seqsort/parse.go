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

package main

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// integerPrefix matches what a lenient integer parser accepts: optional
// leading space and sign, then a hex (0x) or decimal digit run. Anything
// after the digits is ignored.
var integerPrefix = regexp.MustCompile(`^\s*([+-]?)(?:0[xX]([0-9a-fA-F]+)|([0-9]+))`)

// parseNumber parses the integer prefix of s. Strings without one, and
// values outside the int32 range, are rejected.
func parseNumber(s string) (int32, bool) {
	m := integerPrefix.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	digits, base := m[3], 10
	if m[2] != "" {
		digits, base = m[2], 16
	}
	v, err := strconv.ParseInt(m[1]+digits, base, 64)
	if err != nil || v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}

// parseNumbers keeps the arguments that parse and drops the rest.
func parseNumbers(args []string) []int32 {
	return lo.FilterMap(args, func(arg string, _ int) (int32, bool) {
		return parseNumber(arg)
	})
}

func formatList(values []int32) string {
	parts := lo.Map(values, func(v int32, _ int) string {
		return strconv.FormatInt(int64(v), 10)
	})
	return "[" + strings.Join(parts, ", ") + "]"
}

// formatFixed2 formats x with two decimals, rounding exact ties away from
// zero. %.2f rounds ties to even, so 0.125 would print as 0.12.
//
// The decision is made on the exact binary value of x, so 1.005 (stored as
// 1.00499...) still prints as 1.00.
func formatFixed2(x float64) string {
	neg := x < 0

	scaled := new(big.Float).SetPrec(256).SetFloat64(math.Abs(x))
	scaled.Mul(scaled, big.NewFloat(100))

	n, _ := scaled.Int(nil) // truncates toward zero
	frac := new(big.Float).SetPrec(256).Sub(scaled, new(big.Float).SetInt(n))
	if frac.Cmp(big.NewFloat(0.5)) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	digits := n.String()
	if len(digits) < 3 {
		digits = strings.Repeat("0", 3-len(digits)) + digits
	}
	s := digits[:len(digits)-2] + "." + digits[len(digits)-2:]
	if neg {
		return "-" + s
	}
	return s
}
