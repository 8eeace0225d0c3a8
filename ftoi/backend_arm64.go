//go:build !noasm

package ftoi

// arm64 truncating converts saturate in hardware, which changes the shape
// of this backend in two ways. FCVTZU converts straight to unsigned, so
// the two-convert mask trick the SSE backends need for u32/u64 collapses
// to a single instruction. And FCVTZS's out-of-range result is a
// saturated value rather than the sign-bit-only sentinel, so the mask
// trick would not even be applicable here.

//go:noescape
func fcvtzs_f32_i64(x float32) int64

//go:noescape
func fcvtzu_f32_u64(x float32) uint64

//go:noescape
func fcvtzs_f64_i64(x float64) int64

//go:noescape
func fcvtzu_f64_u64(x float64) uint64

const (
	activeBackend = BackendNEON
	wideBits      = 64
)

func f32ToI8(x float32) int8 { return int8(fcvtzs_f32_i64(x)) }
func f32ToU8(x float32) uint8 { return uint8(fcvtzu_f32_u64(x)) }
func f32ToI16(x float32) int16 { return int16(fcvtzs_f32_i64(x)) }
func f32ToU16(x float32) uint16 { return uint16(fcvtzu_f32_u64(x)) }
func f32ToI32(x float32) int32 { return int32(fcvtzs_f32_i64(x)) }
func f32ToU32(x float32) uint32 { return uint32(fcvtzu_f32_u64(x)) }
func f32ToI64(x float32) int64 { return fcvtzs_f32_i64(x) }
func f32ToU64(x float32) uint64 { return fcvtzu_f32_u64(x) }

func f32ToI128(x float32) Int128 { return satF32ToI128(x) }
func f32ToU128(x float32) Uint128 { return satF32ToU128(x) }

func f64ToI8(x float64) int8 { return int8(fcvtzs_f64_i64(x)) }
func f64ToU8(x float64) uint8 { return uint8(fcvtzu_f64_u64(x)) }
func f64ToI16(x float64) int16 { return int16(fcvtzs_f64_i64(x)) }
func f64ToU16(x float64) uint16 { return uint16(fcvtzu_f64_u64(x)) }
func f64ToI32(x float64) int32 { return int32(fcvtzs_f64_i64(x)) }
func f64ToU32(x float64) uint32 { return uint32(fcvtzu_f64_u64(x)) }
func f64ToI64(x float64) int64 { return fcvtzs_f64_i64(x) }
func f64ToU64(x float64) uint64 { return fcvtzu_f64_u64(x) }

func f64ToI128(x float64) Int128 { return satF64ToI128(x) }
func f64ToU128(x float64) Uint128 { return satF64ToU128(x) }
