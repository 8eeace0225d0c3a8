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

package main

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// conversion is one (source float, destination integer) pair, named in
// the short width notation the package uses throughout ("f32", "u64").
type conversion struct {
	Float string
	Int   string
}

var floatWidths = []string{"f32", "f64"}

var intWidths = []string{"i8", "u8", "i16", "u16", "i32", "u32", "i64", "u64", "i128", "u128"}

// goTypes maps the short notation to the Go destination type. The 128-bit
// destinations are the package's own value types.
var goTypes = map[string]string{
	"f32":  "float32",
	"f64":  "float64",
	"i8":   "int8",
	"u8":   "uint8",
	"i16":  "int16",
	"u16":  "uint16",
	"i32":  "int32",
	"u32":  "uint32",
	"i64":  "int64",
	"u64":  "uint64",
	"i128": "Int128",
	"u128": "Uint128",
}

func conversions() []conversion {
	var convs []conversion
	for _, f := range floatWidths {
		for _, i := range intWidths {
			convs = append(convs, conversion{Float: f, Int: i})
		}
	}
	return convs
}

var titler = cases.Title(language.English)

// funcName returns the exported wrapper name, e.g. F32ToU64.
func funcName(c conversion) string {
	return titler.String(c.Float) + "To" + titler.String(c.Int)
}

// implName returns the backend implementation name, e.g. f32ToU64.
func implName(c conversion) string {
	return c.Float + "To" + titler.String(c.Int)
}

// article returns the indefinite article for a destination type name.
func article(goType string) string {
	if strings.HasPrefix(strings.ToLower(goType), "i") {
		return "an"
	}
	return "a"
}

// Generate renders the wrapper file for the given package name and
// returns it formatted.
func Generate(pkg string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by ftoigen; DO NOT EDIT.\n\npackage %s\n", pkg)
	for _, c := range conversions() {
		dst := goTypes[c.Int]
		fmt.Fprintf(&buf, "\n// %s truncates x toward zero to %s %s. If x is out of range of\n",
			funcName(c), article(dst), dst)
		fmt.Fprintf(&buf, "// %s, including NaN and infinities, the result is an arbitrary valid\n", dst)
		fmt.Fprintf(&buf, "// %s; callers needing saturation must range-check first.\n", dst)
		fmt.Fprintf(&buf, "func %s(x %s) %s { return %s(x) }\n",
			funcName(c), goTypes[c.Float], dst, implName(c))
	}
	return imports.Process("convert.go", buf.Bytes(), nil)
}
