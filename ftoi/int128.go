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

import "math"

// Int128 is a two's-complement 128-bit signed integer.
type Int128 struct {
	Lo uint64
	Hi int64
}

// Uint128 is a 128-bit unsigned integer.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

const (
	f64MantBits = 52
	f64ExpBias  = 1023
)

// No architecture offers a 128-bit truncating convert instruction, so
// every backend shares these software conversions. They implement full
// saturating semantics, since the clamp costs nothing next to the bit
// decomposition.

// satF64ToU128 truncates f toward zero to 128 unsigned bits, saturating
// out of range.
func satF64ToU128(f float64) Uint128 {
	switch {
	case math.IsNaN(f) || f <= 0:
		// (-1, 0] truncates to zero; anything lower saturates to zero.
		return Uint128{}
	case f >= 0x1p128:
		return Uint128{Lo: ^uint64(0), Hi: ^uint64(0)}
	case f < 0x1p64:
		return Uint128{Lo: uint64(f)}
	}
	bits := math.Float64bits(f)
	exp := int(bits>>f64MantBits&0x7ff) - f64ExpBias - f64MantBits
	mant := bits&(1<<f64MantBits-1) | 1<<f64MantBits
	// 2^64 <= f < 2^128 pins exp to [12, 75]; the value is mant << exp.
	if exp >= 64 {
		return Uint128{Hi: mant << (exp - 64)}
	}
	return Uint128{Lo: mant << exp, Hi: mant >> (64 - exp)}
}

// satF64ToI128 truncates f toward zero to 128 signed bits, saturating out
// of range.
func satF64ToI128(f float64) Int128 {
	switch {
	case math.IsNaN(f):
		return Int128{}
	case f >= 0x1p127:
		return Int128{Lo: ^uint64(0), Hi: math.MaxInt64}
	case f <= -0x1p127:
		// -2^127 itself is in range and equals the clamp value.
		return Int128{Hi: math.MinInt64}
	}
	u := satF64ToU128(math.Abs(f))
	if f < 0 {
		return negU128(u)
	}
	return Int128{Lo: u.Lo, Hi: int64(u.Hi)}
}

func satF32ToU128(f float32) Uint128 { return satF64ToU128(float64(f)) }

func satF32ToI128(f float32) Int128 { return satF64ToI128(float64(f)) }

// negU128 returns the two's-complement negation of u, reinterpreted as
// signed. u must not exceed 2^127.
func negU128(u Uint128) Int128 {
	lo := ^u.Lo + 1
	hi := ^u.Hi
	if lo == 0 {
		hi++
	}
	return Int128{Lo: lo, Hi: int64(hi)}
}
