package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	src, err := Generate("ftoi")
	require.NoError(t, err)
	out := string(src)

	assert.True(t, strings.HasPrefix(out, "// Code generated by ftoigen; DO NOT EDIT."))
	assert.Contains(t, out, "package ftoi")

	for _, sig := range []string{
		"func F32ToI8(x float32) int8 { return f32ToI8(x) }",
		"func F32ToU64(x float32) uint64 { return f32ToU64(x) }",
		"func F64ToI32(x float64) int32 { return f64ToI32(x) }",
		"func F64ToU128(x float64) Uint128 { return f64ToU128(x) }",
	} {
		assert.Contains(t, out, sig)
	}

	assert.Equal(t, 20, strings.Count(out, "\nfunc "), "expected one wrapper per type pair")
}

func TestFuncNames(t *testing.T) {
	assert.Equal(t, "F32ToI8", funcName(conversion{Float: "f32", Int: "i8"}))
	assert.Equal(t, "F64ToU128", funcName(conversion{Float: "f64", Int: "u128"}))
	assert.Equal(t, "f64ToU128", implName(conversion{Float: "f64", Int: "u128"}))
}

func TestConversionTable(t *testing.T) {
	convs := conversions()
	require.Len(t, convs, 20)
	seen := make(map[conversion]bool, len(convs))
	for _, c := range convs {
		assert.False(t, seen[c], "duplicate pair %+v", c)
		seen[c] = true
		assert.NotEmpty(t, goTypes[c.Float])
		assert.NotEmpty(t, goTypes[c.Int])
	}
}
