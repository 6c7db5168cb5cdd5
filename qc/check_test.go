package qc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmriqc/hemicheck/gradient"
)

func testTable(t *testing.T) *gradient.Table {
	t.Helper()
	tab, err := gradient.New(
		[]float64{0, 1000, 1000},
		[][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
	)
	if err != nil {
		t.Fatalf("gradient.New failed: %v", err)
	}
	return tab
}

func TestCheckHemisphere_Table(t *testing.T) {
	res, err := CheckHemisphere(Input{Table: testTable(t)})
	if err != nil {
		t.Fatalf("CheckHemisphere failed: %v", err)
	}
	if !res.IsHemispherical {
		t.Fatalf("two orthogonal directions reported not hemispherical")
	}
}

func TestCheckHemisphere_Paths(t *testing.T) {
	dir := t.TempDir()
	bval := filepath.Join(dir, "dwi.bval")
	bvec := filepath.Join(dir, "dwi.bvec")
	if err := os.WriteFile(bval, []byte("0 0 1000 1000\n"), 0o644); err != nil {
		t.Fatalf("write bval: %v", err)
	}
	// Antipodal non-b0 pair: the scheme must fail the check.
	if err := os.WriteFile(bvec, []byte("0 0 1 -1\n0 0 0 0\n0 0 0 0\n"), 0o644); err != nil {
		t.Fatalf("write bvec: %v", err)
	}

	res, err := CheckHemisphere(Input{BvalPath: bval, BvecPath: bvec})
	if err != nil {
		t.Fatalf("CheckHemisphere failed: %v", err)
	}
	if res.IsHemispherical {
		t.Fatalf("antipodal scheme reported hemispherical")
	}
	if !res.Pole.Zero() {
		t.Fatalf("pole = %v, want zero", res.Pole)
	}
}

func TestCheckHemisphere_ArgumentCombination(t *testing.T) {
	cases := []struct {
		name string
		in   Input
	}{
		{"both sources", Input{Table: testTable(t), BvalPath: "a.bval", BvecPath: "a.bvec"}},
		{"table plus lone path", Input{Table: testTable(t), BvecPath: "a.bvec"}},
		{"no source", Input{}},
		{"bval only", Input{BvalPath: "a.bval"}},
		{"bvec only", Input{BvecPath: "a.bvec"}},
	}
	for _, tc := range cases {
		if _, err := CheckHemisphere(tc.in); !errors.Is(err, ErrArgumentCombination) {
			t.Fatalf("%s: err = %v, want ErrArgumentCombination", tc.name, err)
		}
	}
}

func TestCheckHemisphere_DefaultTolerance(t *testing.T) {
	// Norms within the default tolerance band pass without an explicit
	// Tolerance on the input.
	tab, err := gradient.New(
		[]float64{1000, 1000},
		[][]float64{{1.0015, 0, 0}, {0, 0, 1}},
	)
	if err != nil {
		t.Fatalf("gradient.New failed: %v", err)
	}
	if _, err := CheckHemisphere(Input{Table: tab}); err != nil {
		t.Fatalf("default tolerance rejected norm 1.0015: %v", err)
	}
}
