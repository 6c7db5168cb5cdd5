package gradient

import "fmt"

// DefaultB0Threshold is the b-value at or below which a sample is treated
// as a b0 acquisition.
const DefaultB0Threshold = 50

// Table pairs b-values with b-vectors for a diffusion acquisition scheme.
type Table struct {
	// Bvals holds one b-value per sample.
	Bvals []float64

	// Bvecs holds one 3-component direction per sample, row-aligned with
	// Bvals. b0 rows conventionally carry the zero vector.
	Bvecs [][]float64

	// B0Threshold is the b-value cutoff for the b0 mask. Zero means
	// DefaultB0Threshold.
	B0Threshold float64
}

// New builds a Table from parallel bval and bvec slices. Every b-vector
// must have exactly 3 components and the two slices must have equal length.
func New(bvals []float64, bvecs [][]float64) (*Table, error) {
	if len(bvals) != len(bvecs) {
		return nil, fmt.Errorf("gradient: %d b-values but %d b-vectors", len(bvals), len(bvecs))
	}
	for i, v := range bvecs {
		if len(v) != 3 {
			return nil, fmt.Errorf("gradient: b-vector %d has %d components, want 3", i, len(v))
		}
	}
	return &Table{Bvals: bvals, Bvecs: bvecs}, nil
}

func (t *Table) b0Threshold() float64 {
	if t.B0Threshold > 0 {
		return t.B0Threshold
	}
	return DefaultB0Threshold
}

// B0Mask returns a per-sample mask that is true for b0 acquisitions, i.e.
// samples whose b-value does not exceed the threshold.
func (t *Table) B0Mask() []bool {
	thr := t.b0Threshold()
	mask := make([]bool, len(t.Bvals))
	for i, b := range t.Bvals {
		mask[i] = b <= thr
	}
	return mask
}

// DirectionVecs returns the b-vectors of all non-b0 samples, preserving
// acquisition order. These are the rows eligible for directional analysis.
func (t *Table) DirectionVecs() [][]float64 {
	mask := t.B0Mask()
	out := make([][]float64, 0, len(t.Bvecs))
	for i, v := range t.Bvecs {
		if mask[i] {
			continue
		}
		out = append(out, v)
	}
	return out
}
