package ftoi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSatSigned(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int64
	}{
		{"zero", 0, 0},
		{"negative zero", math.Copysign(0, -1), 0},
		{"nan", math.NaN(), 0},
		{"truncates up", 127.99, 127},
		{"truncates down", -127.99, -127},
		{"max in range", 127, 127},
		{"min in range", -128, -128},
		{"just below min", -128.7, -128},
		{"above range clamps", 128, 127},
		{"far above range clamps", 1e30, 127},
		{"below range clamps", -129, -128},
		{"positive infinity", math.Inf(1), 127},
		{"negative infinity", math.Inf(-1), -128},
		{"subnormal", math.SmallestNonzeroFloat64, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, int8(tt.want), satSigned[int8](tt.in))
		})
	}

	assert.Equal(t, int64(math.MaxInt64), satSigned[int64](math.Inf(1)))
	assert.Equal(t, int64(math.MinInt64), satSigned[int64](math.Inf(-1)))
	assert.Equal(t, int64(math.MinInt64), satSigned[int64](-0x1p63))
	assert.Equal(t, int64(math.MaxInt64), satSigned[int64](0x1p63))
	assert.Equal(t, int32(math.MaxInt32), satSigned[int32](0x1p31))
	assert.Equal(t, int32(math.MinInt32), satSigned[int32](-0x1p31))
	assert.Equal(t, int16(-12345), satSigned[int16](-12345.678))

	// float32 inputs widen exactly, so the boundaries land identically.
	assert.Equal(t, int8(127), satSigned[int8](float32(300)))
	assert.Equal(t, int8(-128), satSigned[int8](float32(-300)))
}

func TestSatUnsigned(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want uint64
	}{
		{"zero", 0, 0},
		{"negative zero", math.Copysign(0, -1), 0},
		{"nan", math.NaN(), 0},
		{"fraction", 0.99, 0},
		{"small negative fraction", -0.5, 0},
		{"negative clamps", -5, 0},
		{"truncates", 255.9, 255},
		{"max in range", 255, 255},
		{"above range clamps", 256, 255},
		{"far above range clamps", 1e30, 255},
		{"positive infinity", math.Inf(1), 255},
		{"negative infinity", math.Inf(-1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, uint8(tt.want), satUnsigned[uint8](tt.in))
		})
	}

	assert.Equal(t, uint64(math.MaxUint64), satUnsigned[uint64](math.Inf(1)))
	assert.Equal(t, uint64(math.MaxUint64), satUnsigned[uint64](0x1p64))
	assert.Equal(t, uint64(1)<<63+8192, satUnsigned[uint64](0x1p63+8192))
	assert.Equal(t, uint32(math.MaxUint32), satUnsigned[uint32](0x1p32))
	assert.Equal(t, uint16(54321), satUnsigned[uint16](54321.99))

	assert.Equal(t, uint8(255), satUnsigned[uint8](float32(300)))
	assert.Equal(t, uint8(0), satUnsigned[uint8](float32(-300)))
}
