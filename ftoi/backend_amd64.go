//go:build !noasm

package ftoi

// The truncating converts are pinned in assembly so that the out-of-range
// result is the CVTT "integer indefinite" sentinel (sign bit set, all
// other bits clear) on every compiler. The branchless unsigned extension
// below depends on that exact bit pattern; the Go compiler is free to
// lower a native conversion differently.

//go:noescape
func cvtt_f32_i64(x float32) int64

//go:noescape
func cvtt_f64_i64(x float64) int64

const (
	activeBackend = BackendSSE2
	wideBits      = 64
)

// f32ToU64 assembles the unsigned result from two signed converts with no
// branch. If x < 2^63 the first convert is already correct and the mask is
// zero. If x is in [2^63, 2^64), the first convert overflows to the
// sentinel, the mask is all ones, and the second convert holds the low 63
// bits exactly (subtracting 2^63 from a float in that range is exact);
// OR-ing the sentinel back in restores the missing top bit.
func f32ToU64(x float32) uint64 {
	i1 := cvtt_f32_i64(x)
	i2 := cvtt_f32_i64(x - 0x1p63)
	tooLarge := i1 >> 63 // arithmetic: all ones iff i1 is the sentinel
	return uint64(i1 | (i2 & tooLarge))
}

// f32ToU64Branchful is the comparison-based equivalent of f32ToU64. It is
// slower; it stays as the reference the branchless form is tested against.
func f32ToU64Branchful(x float32) uint64 {
	if x <= 0x1p63 {
		return uint64(cvtt_f32_i64(x))
	}
	return uint64(cvtt_f32_i64(x-0x1p63)) + 1<<63
}

func f64ToU64(x float64) uint64 {
	// See f32ToU64.
	i1 := cvtt_f64_i64(x)
	i2 := cvtt_f64_i64(x - 0x1p63)
	tooLarge := i1 >> 63
	return uint64(i1 | (i2 & tooLarge))
}

func f64ToU64Branchful(x float64) uint64 {
	if x <= 0x1p63 {
		return uint64(cvtt_f64_i64(x))
	}
	return uint64(cvtt_f64_i64(x-0x1p63)) + 1<<63
}

// Narrower outputs are plain truncations of the wide result: if the input
// is in range of the narrow type, the wide conversion is exact and the low
// bits already agree; if it is not, any truncation is as unspecified as
// the wide value was.

func f32ToI8(x float32) int8 { return int8(cvtt_f32_i64(x)) }
func f32ToU8(x float32) uint8 { return uint8(cvtt_f32_i64(x)) }
func f32ToI16(x float32) int16 { return int16(cvtt_f32_i64(x)) }

func f32ToU16(x float32) uint16 { return uint16(cvtt_f32_i64(x)) }
func f32ToI32(x float32) int32 { return int32(cvtt_f32_i64(x)) }
func f32ToU32(x float32) uint32 { return uint32(cvtt_f32_i64(x)) }
func f32ToI64(x float32) int64 { return cvtt_f32_i64(x) }

func f32ToI128(x float32) Int128 { return satF32ToI128(x) }
func f32ToU128(x float32) Uint128 { return satF32ToU128(x) }

func f64ToI8(x float64) int8 { return int8(cvtt_f64_i64(x)) }
func f64ToU8(x float64) uint8 { return uint8(cvtt_f64_i64(x)) }
func f64ToI16(x float64) int16 { return int16(cvtt_f64_i64(x)) }
func f64ToU16(x float64) uint16 { return uint16(cvtt_f64_i64(x)) }
func f64ToI32(x float64) int32 { return int32(cvtt_f64_i64(x)) }
func f64ToU32(x float64) uint32 { return uint32(cvtt_f64_i64(x)) }
func f64ToI64(x float64) int64 { return cvtt_f64_i64(x) }

func f64ToI128(x float64) Int128 { return satF64ToI128(x) }
func f64ToU128(x float64) Uint128 { return satF64ToU128(x) }
