//go:build noasm || !(amd64 || arm64 || 386.sse2)

package ftoi

// Portable backend: a full saturating cast on every path. This is what
// the noasm tag forces everywhere, and what architectures without a known
// single-instruction truncating convert get by default. It is strictly
// stronger than the package contract (out-of-range inputs clamp instead
// of producing an arbitrary value); callers must not rely on that.

const (
	activeBackend = BackendFallback
	wideBits      = 0
)

func f32ToI8(x float32) int8 { return satSigned[int8](x) }
func f32ToU8(x float32) uint8 { return satUnsigned[uint8](x) }
func f32ToI16(x float32) int16 { return satSigned[int16](x) }
func f32ToU16(x float32) uint16 { return satUnsigned[uint16](x) }
func f32ToI32(x float32) int32 { return satSigned[int32](x) }
func f32ToU32(x float32) uint32 { return satUnsigned[uint32](x) }
func f32ToI64(x float32) int64 { return satSigned[int64](x) }
func f32ToU64(x float32) uint64 { return satUnsigned[uint64](x) }

func f32ToI128(x float32) Int128 { return satF32ToI128(x) }
func f32ToU128(x float32) Uint128 { return satF32ToU128(x) }

func f64ToI8(x float64) int8 { return satSigned[int8](x) }
func f64ToU8(x float64) uint8 { return satUnsigned[uint8](x) }
func f64ToI16(x float64) int16 { return satSigned[int16](x) }
func f64ToU16(x float64) uint16 { return satUnsigned[uint16](x) }
func f64ToI32(x float64) int32 { return satSigned[int32](x) }
func f64ToU32(x float64) uint32 { return satUnsigned[uint32](x) }
func f64ToI64(x float64) int64 { return satSigned[int64](x) }
func f64ToU64(x float64) uint64 { return satUnsigned[uint64](x) }

func f64ToI128(x float64) Int128 { return satF64ToI128(x) }
func f64ToU128(x float64) Uint128 { return satF64ToU128(x) }
