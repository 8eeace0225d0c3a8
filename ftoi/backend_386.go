//go:build !noasm && 386.sse2

package ftoi

// 386 has truncating converts with 32-bit output only, so the wide width
// here is 32 and the 64/128-bit outputs take the portable path. The
// 386.sse2 GOARCH feature tag is true under the default GO386 setting and
// false under GO386=softfloat, which keeps the SSE instructions
// unreachable on builds that cannot execute them.

//go:noescape
func cvtt_f32_i32(x float32) int32

//go:noescape
func cvtt_f64_i32(x float64) int32

const (
	activeBackend = BackendSSE2x86
	wideBits      = 32
)

// f32ToU32 assembles the unsigned result from two signed converts with no
// branch; see the amd64 backend for the full argument, with 2^31 in place
// of 2^63.
func f32ToU32(x float32) uint32 {
	i1 := cvtt_f32_i32(x)
	i2 := cvtt_f32_i32(x - 0x1p31)
	tooLarge := i1 >> 31
	return uint32(i1 | (i2 & tooLarge))
}

// f32ToU32Branchful is the comparison-based equivalent of f32ToU32, kept
// as the reference the branchless form is tested against.
func f32ToU32Branchful(x float32) uint32 {
	if x <= 0x1p31 {
		return uint32(cvtt_f32_i32(x))
	}
	return uint32(cvtt_f32_i32(x-0x1p31)) + 1<<31
}

func f64ToU32(x float64) uint32 {
	i1 := cvtt_f64_i32(x)
	i2 := cvtt_f64_i32(x - 0x1p31)
	tooLarge := i1 >> 31
	return uint32(i1 | (i2 & tooLarge))
}

func f64ToU32Branchful(x float64) uint32 {
	if x <= 0x1p31 {
		return uint32(cvtt_f64_i32(x))
	}
	return uint32(cvtt_f64_i32(x-0x1p31)) + 1<<31
}

func f32ToI8(x float32) int8 { return int8(cvtt_f32_i32(x)) }
func f32ToU8(x float32) uint8 { return uint8(cvtt_f32_i32(x)) }
func f32ToI16(x float32) int16 { return int16(cvtt_f32_i32(x)) }
func f32ToU16(x float32) uint16 { return uint16(cvtt_f32_i32(x)) }
func f32ToI32(x float32) int32 { return cvtt_f32_i32(x) }

func f32ToI64(x float32) int64 { return satSigned[int64](x) }
func f32ToU64(x float32) uint64 { return satUnsigned[uint64](x) }
func f32ToI128(x float32) Int128 { return satF32ToI128(x) }

func f32ToU128(x float32) Uint128 { return satF32ToU128(x) }

func f64ToI8(x float64) int8 { return int8(cvtt_f64_i32(x)) }
func f64ToU8(x float64) uint8 { return uint8(cvtt_f64_i32(x)) }
func f64ToI16(x float64) int16 { return int16(cvtt_f64_i32(x)) }
func f64ToU16(x float64) uint16 { return uint16(cvtt_f64_i32(x)) }
func f64ToI32(x float64) int32 { return cvtt_f64_i32(x) }

func f64ToI64(x float64) int64 { return satSigned[int64](x) }
func f64ToU64(x float64) uint64 { return satUnsigned[uint64](x) }
func f64ToI128(x float64) Int128 { return satF64ToI128(x) }
func f64ToU128(x float64) Uint128 { return satF64ToU128(x) }
