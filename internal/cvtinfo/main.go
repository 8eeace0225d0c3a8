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

// Package main provides a diagnostic tool to print the conversion backend
// compiled into the binary and the CPU features of the host. Useful when a
// bug report needs to say which code path was exercised.
package main

import (
	"fmt"
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"

	"github.com/fastfloat/go-ftoi/ftoi"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("CPU: %s\n", cpuid.CPU.BrandName)
	fmt.Println()

	fmt.Printf("ftoi backend: %s\n", ftoi.Active())
	if w := ftoi.WideBits(); w > 0 {
		fmt.Printf("ftoi wide width: %d bits\n", w)
	} else {
		fmt.Println("ftoi wide width: none (portable saturating casts)")
	}
	fmt.Println()

	switch runtime.GOARCH {
	case "amd64", "386":
		printX86Features()
	case "arm64":
		printARM64Features()
	}
}

func printX86Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("HasSSE2: %v\n", cpu.X86.HasSSE2)
	fmt.Printf("HasSSE41: %v\n", cpu.X86.HasSSE41)
	fmt.Printf("HasAVX: %v\n", cpu.X86.HasAVX)
	fmt.Printf("HasAVX2: %v\n", cpu.X86.HasAVX2)
	fmt.Printf("HasAVX512F: %v\n", cpu.X86.HasAVX512F)
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("HasFP: %v\n", cpu.ARM64.HasFP)
	fmt.Printf("HasASIMD: %v\n", cpu.ARM64.HasASIMD)
	fmt.Printf("HasSVE: %v\n", cpu.ARM64.HasSVE)
	fmt.Printf("HasATOMICS: %v\n", cpu.ARM64.HasATOMICS)
}
