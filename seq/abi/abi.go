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

// Package abi exposes the sequence algorithms across a host boundary.
//
// A host owns a linear seq.Memory and describes each sequence by a byte
// offset and an element count, as a WebAssembly host would when calling an
// exported function. Every entry point resolves the pair into a bounded
// view before touching memory and reports an invalid pair as an error
// instead of reading or writing outside the region. Valid input, including
// a zero length, never fails.
//
// Logical signatures and their Host methods:
//
//	sort_bubble(sequence, length)            Host.SortBubble
//	sort_quick(sequence, length)             Host.SortQuick
//	search_binary(sequence, length, target)  Host.SearchBinary
//	stats_min(sequence, length)              Host.StatsMin
//	stats_max(sequence, length)              Host.StatsMax
//	stats_average(sequence, length)          Host.StatsAverage
package abi

import (
	"io"

	"github.com/convox/logger"
	"github.com/pkg/errors"

	"github.com/ajroetker/go-seqalgo/seq"
	"github.com/ajroetker/go-seqalgo/seq/contrib/search"
	"github.com/ajroetker/go-seqalgo/seq/contrib/sort"
	"github.com/ajroetker/go-seqalgo/seq/contrib/stats"
)

// NotFound is the index SearchBinary returns when the target is absent.
const NotFound int32 = search.NotFound

// Host runs the sequence algorithms against regions of a linear memory.
// A Host is not safe for concurrent calls on overlapping regions.
type Host struct {
	mem    *seq.Memory
	logger *logger.Logger
}

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the logger used to report calls and faults.
func WithLogger(l *logger.Logger) Option {
	return func(h *Host) {
		h.logger = l
	}
}

// New returns a Host bound to mem. By default it logs nowhere.
func New(mem *seq.Memory, opts ...Option) *Host {
	h := &Host{
		mem:    mem,
		logger: logger.NewWriter("ns=seqabi", io.Discard),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Memory returns the memory the host was created with.
func (h *Host) Memory() *seq.Memory {
	return h.mem
}

// SortBubble sorts length elements at ptr in place with bubble sort.
func (h *Host) SortBubble(ptr, length int32) error {
	log := h.logger.At("sort_bubble").Start()

	v, err := h.region(ptr, length)
	if err != nil {
		return log.Error(err)
	}
	sort.BubbleSort(v.Int32s())

	log.Successf("ptr=%d length=%d", ptr, length)
	return nil
}

// SortQuick sorts length elements at ptr in place with quicksort.
func (h *Host) SortQuick(ptr, length int32) error {
	log := h.logger.At("sort_quick").Start()

	v, err := h.region(ptr, length)
	if err != nil {
		return log.Error(err)
	}
	sort.QuickSort(v.Int32s())

	log.Successf("ptr=%d length=%d", ptr, length)
	return nil
}

// SearchBinary returns the index of an element equal to target among the
// length ascending elements at ptr, or NotFound.
func (h *Host) SearchBinary(ptr, length, target int32) (int32, error) {
	log := h.logger.At("search_binary").Start()

	v, err := h.region(ptr, length)
	if err != nil {
		return NotFound, log.Error(err)
	}
	// The index is below length, which is an int32.
	idx := int32(search.BinarySearch(v.Int32s(), target))

	log.Successf("ptr=%d length=%d target=%d index=%d", ptr, length, target, idx)
	return idx, nil
}

// StatsMin returns the smallest of length elements at ptr, or 0 when length
// is 0.
func (h *Host) StatsMin(ptr, length int32) (int32, error) {
	log := h.logger.At("stats_min").Start()

	v, err := h.region(ptr, length)
	if err != nil {
		return 0, log.Error(err)
	}
	x := stats.Min(v.Int32s())

	log.Successf("ptr=%d length=%d value=%d", ptr, length, x)
	return x, nil
}

// StatsMax returns the largest of length elements at ptr, or 0 when length
// is 0.
func (h *Host) StatsMax(ptr, length int32) (int32, error) {
	log := h.logger.At("stats_max").Start()

	v, err := h.region(ptr, length)
	if err != nil {
		return 0, log.Error(err)
	}
	x := stats.Max(v.Int32s())

	log.Successf("ptr=%d length=%d value=%d", ptr, length, x)
	return x, nil
}

// StatsAverage returns the mean of length elements at ptr, or 0.0 when
// length is 0.
func (h *Host) StatsAverage(ptr, length int32) (float64, error) {
	log := h.logger.At("stats_average").Start()

	v, err := h.region(ptr, length)
	if err != nil {
		return 0, log.Error(err)
	}
	x := stats.Average(v.Int32s())

	log.Successf("ptr=%d length=%d value=%g", ptr, length, x)
	return x, nil
}

func (h *Host) region(ptr, length int32) (seq.View, error) {
	v, err := h.mem.Region(ptr, length)
	if err != nil {
		return seq.View{}, errors.Wrapf(err, "region ptr=%d length=%d", ptr, length)
	}
	return v, nil
}
