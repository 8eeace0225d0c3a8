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

package ftoi

// Backend identifies the conversion implementation compiled into the
// binary. Exactly one backend is active per build; selection happens
// through build tags, never at runtime.
type Backend int

const (
	// BackendFallback performs portable saturating casts.
	BackendFallback Backend = iota

	// BackendSSE2 uses the 64-bit output forms of CVTTSS2SI/CVTTSD2SI
	// (amd64).
	BackendSSE2

	// BackendSSE2x86 uses the 32-bit output forms of CVTTSS2SI/CVTTSD2SI
	// (386 with SSE2).
	BackendSSE2x86

	// BackendNEON uses FCVTZS/FCVTZU (arm64).
	BackendNEON
)

// String returns a human-readable name for the backend.
func (b Backend) String() string {
	switch b {
	case BackendFallback:
		return "fallback"
	case BackendSSE2:
		return "sse2/64"
	case BackendSSE2x86:
		return "sse2/32"
	case BackendNEON:
		return "neon/64"
	default:
		return "unknown"
	}
}

// Active reports the backend compiled into this binary.
func Active() Backend { return activeBackend }

// WideBits reports the widest integer width the active backend converts
// with a single hardware instruction, or 0 for the fallback backend.
func WideBits() int { return wideBits }
