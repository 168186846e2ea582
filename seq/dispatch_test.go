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

package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchLevelString(t *testing.T) {
	assert.Equal(t, "scalar", DispatchScalar.String())
	assert.Equal(t, "sse2", DispatchSSE2.String())
	assert.Equal(t, "avx2", DispatchAVX2.String())
	assert.Equal(t, "avx512", DispatchAVX512.String())
	assert.Equal(t, "neon", DispatchNEON.String())
	assert.Equal(t, "unknown", DispatchLevel(99).String())
}

func TestMaxLanes(t *testing.T) {
	lanes := MaxLanes()
	assert.GreaterOrEqual(t, lanes, 4)
	assert.LessOrEqual(t, lanes, MaxLaneCount)
	assert.Equal(t, CurrentWidth()/ElementSize, lanes)
	assert.Equal(t, CurrentLevel().String(), CurrentName())
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("SEQ_NO_SIMD", tt.val)
		assert.Equal(t, tt.want, NoSimdEnv(), "SEQ_NO_SIMD=%q", tt.val)
	}
}
