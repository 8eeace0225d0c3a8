//go:build !noasm

package ftoi

import (
	"math"
	"testing"
)

func TestActiveBackendArm64(t *testing.T) {
	if Active() != BackendNEON {
		t.Fatalf("Active() = %s, want %s", Active(), BackendNEON)
	}
	if WideBits() != 64 {
		t.Fatalf("WideBits() = %d, want 64", WideBits())
	}
}

// TestHardwareSaturation pins the FCVTZ semantics the backend relies on:
// out-of-range values clamp and NaN converts to zero, so the wide results
// are usable for narrowing without a sentinel correction.
func TestHardwareSaturation(t *testing.T) {
	if got := fcvtzs_f64_i64(math.Inf(1)); got != math.MaxInt64 {
		t.Errorf("fcvtzs_f64_i64(+Inf) = %d, want MaxInt64", got)
	}
	if got := fcvtzs_f64_i64(math.Inf(-1)); got != math.MinInt64 {
		t.Errorf("fcvtzs_f64_i64(-Inf) = %d, want MinInt64", got)
	}
	if got := fcvtzs_f64_i64(math.NaN()); got != 0 {
		t.Errorf("fcvtzs_f64_i64(NaN) = %d, want 0", got)
	}
	if got := fcvtzu_f64_u64(math.Inf(1)); got != ^uint64(0) {
		t.Errorf("fcvtzu_f64_u64(+Inf) = %d, want MaxUint64", got)
	}
	if got := fcvtzu_f64_u64(-1); got != 0 {
		t.Errorf("fcvtzu_f64_u64(-1) = %d, want 0", got)
	}
	if got := fcvtzu_f32_u64(-0.5); got != 0 {
		t.Errorf("fcvtzu_f32_u64(-0.5) = %d, want 0", got)
	}
	if got := fcvtzs_f32_i64(-12345.9); got != -12345 {
		t.Errorf("fcvtzs_f32_i64(-12345.9) = %d, want -12345", got)
	}
}

// TestUnsignedWideDirect checks the single-instruction unsigned conversion
// against the portable reference across the unsigned boundary region the
// SSE backends need two converts for.
func TestUnsignedWideDirect(t *testing.T) {
	for _, f := range interestingF64() {
		if !inRange(f, 64, false) {
			continue
		}
		if got, want := fcvtzu_f64_u64(f), satUnsigned[uint64](f); got != want {
			t.Errorf("fcvtzu_f64_u64(%g) = %d, want %d", f, got, want)
		}
	}
}
