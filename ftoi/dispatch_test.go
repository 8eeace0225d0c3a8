package ftoi

import "testing"

func TestBackendReporting(t *testing.T) {
	b := Active()
	if b.String() == "unknown" {
		t.Errorf("Active() = %d, which has no name", b)
	}
	switch w := WideBits(); w {
	case 0:
		if b != BackendFallback {
			t.Errorf("WideBits() = 0 but backend is %s", b)
		}
	case 32, 64:
		if b == BackendFallback {
			t.Errorf("WideBits() = %d but backend is the fallback", w)
		}
	default:
		t.Errorf("WideBits() = %d, want 0, 32, or 64", w)
	}
}
