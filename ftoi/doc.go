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

// Package ftoi converts floating point values to integer types faster
// than a range-checked conversion.
//
// Go fully specifies float-to-integer conversion only when the truncated
// value is representable in the destination type. Out of range - including
// NaN and infinities - the result of a plain conversion is implementation
// dependent, so portable code ends up guarding every conversion with
// comparisons and special cases (a saturating cast). Those guards cost more
// than the conversion itself: on amd64 the truncation proper is a single
// CVTTSS2SI instruction.
//
// This package keeps the single-instruction fast path and relaxes the
// contract instead. If the input is in range of the output type, the result
// is exactly the truncation toward zero. If it is not, the result is an
// arbitrary but valid value of the output type: never a panic, never a
// trap, just an unspecified number. Callers that need saturation or NaN
// detection must range-check before converting, for example:
//
//	if f >= -128 && f < 128 {
//		v := ftoi.F64ToI8(f) // exact truncation
//	}
//
// # Backends
//
// The implementation is chosen once, at build time:
//
//   - amd64: CVTTSS2SI/CVTTSD2SI with 64-bit output, all conversions
//     except the 128-bit outputs take one or two instructions.
//   - 386 with SSE2 (the default GO386 setting): the 32-bit output forms;
//     64- and 128-bit outputs use the portable path.
//   - arm64: FCVTZS/FCVTZU, one instruction per conversion.
//   - everything else, or any build with the noasm tag: a portable
//     backend that performs a full saturating cast (NaN converts to zero,
//     out-of-range values clamp). Callers must not rely on that stronger
//     behavior; it is not part of the contract.
//
// Selection is static. There is no runtime capability check on any call
// path, which is the point: the cost of a conversion is a small, constant
// number of instructions.
//
// 128-bit results are returned as Int128/Uint128 values, converted in
// software on every backend.
//
// All functions are pure and safe for unsynchronized concurrent use.
package ftoi

//go:generate go run github.com/fastfloat/go-ftoi/cmd/ftoigen --out convert.go
