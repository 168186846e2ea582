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
	"fmt"

	"github.com/pkg/errors"
)

// Fault sentinels. Every fault returned by this package matches exactly one
// of them with errors.Is.
var (
	// ErrOutOfRange reports an access or region that does not lie within
	// the addressable bounds.
	ErrOutOfRange = errors.New("seq: out of range")

	// ErrNegativeLength reports a negative element count or byte offset.
	ErrNegativeLength = errors.New("seq: negative length")

	// ErrMisaligned reports a byte offset that is not a multiple of the
	// element size.
	ErrMisaligned = errors.New("seq: misaligned offset")

	// ErrNilMemory reports a region request against a nil Memory.
	ErrNilMemory = errors.New("seq: nil memory")
)

// OutOfRangeError describes a bounds fault. Offset and Length are in the
// unit of the failing operation (elements for View, bytes for Memory).
type OutOfRangeError struct {
	Op     string
	Offset int64
	Length int64
	Limit  int64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("seq: %s out of range: offset=%d length=%d limit=%d", e.Op, e.Offset, e.Length, e.Limit)
}

// Is reports whether target is ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

func outOfRange(op string, offset, length, limit int64) error {
	return errors.WithStack(&OutOfRangeError{Op: op, Offset: offset, Length: length, Limit: limit})
}
