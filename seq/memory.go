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
	"math"
	"unsafe"

	"github.com/pkg/errors"
)

// ElementSize is the size in bytes of one sequence element.
const ElementSize = 4

// Memory is a host-owned linear memory region, the analogue of a
// WebAssembly instance's memory buffer. Sequences are addressed inside it by
// a byte offset and an element count, and Region hands the algorithms a
// zero-copy View over them.
//
// The backing store is allocated as 64-bit words so that every offset that
// is a multiple of ElementSize is correctly aligned for int32 access.
type Memory struct {
	words []uint64
	bytes []byte
}

// NewMemory allocates a zeroed region of at least size bytes, rounded up to
// a multiple of 8.
func NewMemory(size int) (*Memory, error) {
	if size < 0 {
		return nil, errors.Wrapf(ErrNegativeLength, "memory size %d", size)
	}
	m := &Memory{words: make([]uint64, (size+7)/8)}
	if len(m.words) > 0 {
		m.bytes = unsafe.Slice((*byte)(unsafe.Pointer(&m.words[0])), len(m.words)*8)
	}
	return m, nil
}

// Size returns the size of the region in bytes.
func (m *Memory) Size() int {
	if m == nil {
		return 0
	}
	return len(m.bytes)
}

// Bytes returns the raw region.
func (m *Memory) Bytes() []byte {
	if m == nil {
		return nil
	}
	return m.bytes
}

// Region returns a View over length int32 elements starting at byte offset
// ptr. Nothing is read or written when the pair is rejected.
func (m *Memory) Region(ptr, length int32) (View, error) {
	if m == nil {
		return View{}, errors.WithStack(ErrNilMemory)
	}
	if ptr < 0 {
		return View{}, errors.Wrapf(ErrNegativeLength, "region offset %d", ptr)
	}
	if length < 0 {
		return View{}, errors.Wrapf(ErrNegativeLength, "region length %d", length)
	}
	if ptr%ElementSize != 0 {
		return View{}, errors.Wrapf(ErrMisaligned, "region offset %d", ptr)
	}

	// int64 so that ptr + 4*length cannot wrap.
	end := int64(ptr) + int64(length)*ElementSize
	if end > int64(len(m.bytes)) {
		return View{}, outOfRange("region", int64(ptr), int64(length)*ElementSize, int64(len(m.bytes)))
	}
	if length == 0 {
		return View{}, nil
	}

	return View{data: unsafe.Slice((*int32)(unsafe.Pointer(&m.bytes[ptr])), length)}, nil
}

// Write copies values into the region starting at byte offset ptr.
func (m *Memory) Write(ptr int32, values []int32) error {
	n, err := elementCount(len(values))
	if err != nil {
		return err
	}
	v, err := m.Region(ptr, n)
	if err != nil {
		return err
	}
	copy(v.data, values)
	return nil
}

// Read returns a copy of length elements starting at byte offset ptr.
func (m *Memory) Read(ptr, length int32) ([]int32, error) {
	v, err := m.Region(ptr, length)
	if err != nil {
		return nil, err
	}
	out := make([]int32, v.Len())
	copy(out, v.data)
	return out, nil
}

func elementCount(n int) (int32, error) {
	if int64(n) > math.MaxInt32 {
		return 0, outOfRange("write", 0, int64(n), math.MaxInt32)
	}
	return int32(n), nil
}
