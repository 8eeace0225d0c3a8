// Copyright 2025 go-ftoi Authors
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

package ftoi

import (
	"math"
	"unsafe"
)

// Go leaves the result of an out-of-range float-to-integer conversion
// implementation dependent, so the portable backend cannot lean on the
// native conversion alone. These helpers pin down full saturating
// semantics: NaN converts to zero, values below range clamp to the
// minimum, values above range clamp to the maximum, and in-range values
// truncate toward zero using the native conversion, which is fully
// specified for them. They double as the reference the fast backends are
// tested against.

type signedInt interface {
	~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInt interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

type floatIn interface {
	~float32 | ~float64
}

// satSigned converts x to T, saturating out of range.
func satSigned[T signedInt, F floatIn](x F) T {
	f := float64(x) // exact for both float widths
	bits := int(unsafe.Sizeof(T(0)) * 8)
	limit := math.Ldexp(1, bits-1)
	switch {
	case math.IsNaN(f):
		return 0
	case f >= limit:
		return T(int64(^uint64(0) >> (65 - bits)))
	case f <= -limit:
		// -2^(bits-1) itself is in range and equals the clamp value, so
		// folding it into the clamp branch changes nothing.
		return T(int64(-1) << (bits - 1))
	default:
		return T(int64(f))
	}
}

// satUnsigned converts x to T, saturating out of range.
func satUnsigned[T unsignedInt, F floatIn](x F) T {
	f := float64(x)
	bits := int(unsafe.Sizeof(T(0)) * 8)
	switch {
	case math.IsNaN(f) || f <= 0:
		// Values in (-1, 0] truncate to zero anyway; everything further
		// down saturates to zero.
		return 0
	case f >= math.Ldexp(1, bits):
		return T(^uint64(0) >> (64 - bits))
	default:
		return T(uint64(f))
	}
}
