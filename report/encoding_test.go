package report

import (
	"testing"

	"github.com/dmriqc/hemicheck/vec3"
)

func TestEncodeDecodePole_RoundTrip(t *testing.T) {
	orig := vec3.Vec3{0.7071067811865476, -0.7071067811865476, 0}

	decoded, err := DecodePole(EncodePole(orig))
	if err != nil {
		t.Fatalf("DecodePole failed: %v", err)
	}
	if decoded != orig {
		t.Fatalf("decoded = %v, want %v", decoded, orig)
	}
}

func TestDecodePole_InvalidLength(t *testing.T) {
	if _, err := DecodePole(make([]byte, 23)); err == nil {
		t.Fatalf("expected error for truncated pole blob")
	}
	if _, err := DecodePole(nil); err == nil {
		t.Fatalf("expected error for nil pole blob")
	}
}
