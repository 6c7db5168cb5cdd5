package report

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/dmriqc/hemicheck/vec3"
)

// poleBlobLen is the byte length of an encoded pole: 3 little-endian IEEE
// 754 float64 values.
const poleBlobLen = 3 * 8

// EncodePole encodes a pole vector into a BLOB representation suitable for
// storage in SQLite: a little-endian sequence of the 3 float64 components.
func EncodePole(pole vec3.Vec3) []byte {
	b := make([]byte, poleBlobLen)
	for i, v := range pole {
		binary.LittleEndian.PutUint64(b[i*8:], math.Float64bits(v))
	}
	return b
}

// DecodePole decodes a BLOB produced by EncodePole back into a pole vector.
func DecodePole(b []byte) (vec3.Vec3, error) {
	if len(b) != poleBlobLen {
		return vec3.Vec3{}, fmt.Errorf("report: invalid pole blob length %d, want %d", len(b), poleBlobLen)
	}
	var pole vec3.Vec3
	for i := range pole {
		pole[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return pole, nil
}
