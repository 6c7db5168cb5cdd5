package gradient

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_FSLLayout(t *testing.T) {
	// 3 rows x 4 columns: one row per axis, transposed on load.
	bval := writeFile(t, "scheme.bval", "0 1000 1000 1000\n")
	bvec := writeFile(t, "scheme.bvec", "0 1 0 0\n0 0 1 0\n0 0 0 1\n")

	tab, err := Load(bval, bvec)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tab.Bvals) != 4 || len(tab.Bvecs) != 4 {
		t.Fatalf("loaded %d bvals, %d bvecs; want 4 each", len(tab.Bvals), len(tab.Bvecs))
	}
	if got := tab.Bvecs[1]; got[0] != 1 || got[1] != 0 || got[2] != 0 {
		t.Fatalf("Bvecs[1] = %v, want (1,0,0)", got)
	}
	if dirs := tab.DirectionVecs(); len(dirs) != 3 {
		t.Fatalf("DirectionVecs() returned %d rows, want 3 (b0 removed)", len(dirs))
	}
}

func TestLoad_RowPerVectorLayout(t *testing.T) {
	bval := writeFile(t, "scheme.bval", "0 1000\n")
	bvec := writeFile(t, "scheme.bvec", "0 0 0\n0.707 0.707 0\n")

	tab, err := Load(bval, bvec)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := tab.Bvecs[1]; got[0] != 0.707 || got[1] != 0.707 {
		t.Fatalf("Bvecs[1] = %v, want (0.707,0.707,0)", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	bval := writeFile(t, "scheme.bval", "0 1000 1000\n")

	// Count mismatch between files.
	bvec := writeFile(t, "short.bvec", "0 1\n0 0\n0 0\n")
	if _, err := Load(bval, bvec); err == nil {
		t.Fatalf("expected error for bval/bvec count mismatch")
	}

	// Malformed number.
	bad := writeFile(t, "bad.bvec", "0 x 0\n0 0 0\n0 0 0\n")
	if _, err := Load(bval, bad); err == nil {
		t.Fatalf("expected error for malformed value")
	}

	// Ragged rows.
	ragged := writeFile(t, "ragged.bvec", "0 1 0\n0 0\n0 0 1\n")
	if _, err := Load(bval, ragged); err == nil {
		t.Fatalf("expected error for ragged rows")
	}

	// Missing file.
	if _, err := Load(bval, filepath.Join(t.TempDir(), "absent.bvec")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
