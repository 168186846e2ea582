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

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewView(t *testing.T) {
	data := []int32{5, 3, 8, 1}

	v, err := NewView(data, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []int32{5, 3, 8}, v.Int32s())
	assert.Equal(t, 3, cap(v.Int32s()))

	v, err = NewView(data, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Len())

	v, err = NewView(nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Len())
}

func TestNewViewFaults(t *testing.T) {
	data := []int32{1, 2}

	_, err := NewView(data, -1)
	require.ErrorIs(t, err, ErrNegativeLength)

	_, err = NewView(data, 3)
	require.ErrorIs(t, err, ErrOutOfRange)

	var rerr *OutOfRangeError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "view", rerr.Op)
	assert.Equal(t, int64(3), rerr.Length)
	assert.Equal(t, int64(2), rerr.Limit)
	assert.Equal(t, "seq: view out of range: offset=0 length=3 limit=2", rerr.Error())
}

func TestViewAccessors(t *testing.T) {
	data := []int32{10, 20, 30, 40}
	v, err := NewView(data, 3)
	require.NoError(t, err)

	x, err := v.At(2)
	require.NoError(t, err)
	assert.Equal(t, int32(30), x)

	_, err = v.At(3)
	assert.ErrorIs(t, err, ErrOutOfRange, "index 3 is inside data but outside the view")
	_, err = v.At(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	require.NoError(t, v.Set(0, 99))
	assert.Equal(t, int32(99), data[0], "Set writes through to caller memory")
	assert.ErrorIs(t, v.Set(3, 1), ErrOutOfRange)
	assert.Equal(t, int32(40), data[3])

	require.NoError(t, v.Swap(0, 2))
	assert.Equal(t, []int32{30, 20, 99, 40}, data)
	assert.ErrorIs(t, v.Swap(0, 3), ErrOutOfRange)
	assert.Equal(t, []int32{30, 20, 99, 40}, data, "failed Swap must not modify data")
}

func TestViewAppendDoesNotEscape(t *testing.T) {
	data := []int32{1, 2, 3, 4}
	v, err := NewView(data, 2)
	require.NoError(t, err)

	grown := append(v.Int32s(), 77)
	grown[0] = 55
	assert.Equal(t, []int32{1, 2, 3, 4}, data)
}
