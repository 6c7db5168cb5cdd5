package gradient

import "testing"

func TestNew_Validation(t *testing.T) {
	if _, err := New([]float64{0, 1000}, [][]float64{{0, 0, 0}}); err == nil {
		t.Fatalf("expected error for mismatched lengths")
	}
	if _, err := New([]float64{1000}, [][]float64{{1, 0}}); err == nil {
		t.Fatalf("expected error for non-3D b-vector")
	}
	tab, err := New([]float64{0, 1000}, [][]float64{{0, 0, 0}, {1, 0, 0}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if len(tab.Bvals) != 2 {
		t.Fatalf("len(Bvals) = %d, want 2", len(tab.Bvals))
	}
}

func TestB0Mask(t *testing.T) {
	tab := &Table{
		Bvals: []float64{0, 5, 50, 51, 1000},
		Bvecs: [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
	}
	mask := tab.B0Mask()
	want := []bool{true, true, true, false, false}
	for i := range want {
		if mask[i] != want[i] {
			t.Fatalf("mask[%d] = %v, want %v (threshold %v)", i, mask[i], want[i], DefaultB0Threshold)
		}
	}

	// A custom threshold moves the cutoff.
	tab.B0Threshold = 100
	if mask := tab.B0Mask(); !mask[3] {
		t.Fatalf("bval 51 not masked at threshold 100")
	}
}

func TestDirectionVecs(t *testing.T) {
	tab := &Table{
		Bvals: []float64{0, 1000, 0, 2000},
		Bvecs: [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 0, 0}, {0, 1, 0}},
	}
	dirs := tab.DirectionVecs()
	if len(dirs) != 2 {
		t.Fatalf("len(dirs) = %d, want 2", len(dirs))
	}
	if dirs[0][0] != 1 || dirs[1][1] != 1 {
		t.Fatalf("dirs = %v, want b0 rows removed in order", dirs)
	}
}
