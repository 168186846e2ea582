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

import "github.com/pkg/errors"

// View is a bounded window over a caller-owned run of int32 values.
//
// A View never owns its elements: it pairs a base slice with a length that
// was validated when the View was built, and every accessor stays within
// [0, Len()). The zero View is empty and valid.
type View struct {
	data []int32
}

// NewView returns a View over the first length elements of data.
//
// It fails when length is negative or exceeds len(data); data itself is
// never inspected or modified.
func NewView(data []int32, length int) (View, error) {
	if length < 0 {
		return View{}, errors.Wrapf(ErrNegativeLength, "view length %d", length)
	}
	if length > len(data) {
		return View{}, outOfRange("view", 0, int64(length), int64(len(data)))
	}
	return View{data: data[:length:length]}, nil
}

// Len returns the number of elements in the view.
func (v View) Len() int {
	return len(v.data)
}

// Int32s returns the elements of the view as a slice.
// The slice shares memory with the caller's sequence; its capacity equals
// its length, so appending to it reallocates rather than writing past the
// view.
func (v View) Int32s() []int32 {
	return v.data
}

// At returns the element at index i.
func (v View) At(i int) (int32, error) {
	if err := v.check("at", i); err != nil {
		return 0, err
	}
	return v.data[i], nil
}

// Set stores x at index i.
func (v View) Set(i int, x int32) error {
	if err := v.check("set", i); err != nil {
		return err
	}
	v.data[i] = x
	return nil
}

// Swap exchanges the elements at indices i and j.
func (v View) Swap(i, j int) error {
	if err := v.check("swap", i); err != nil {
		return err
	}
	if err := v.check("swap", j); err != nil {
		return err
	}
	v.data[i], v.data[j] = v.data[j], v.data[i]
	return nil
}

func (v View) check(op string, i int) error {
	if i < 0 || i >= len(v.data) {
		return outOfRange(op, int64(i), 1, int64(len(v.data)))
	}
	return nil
}
