package qc

import (
	"errors"
	"fmt"

	"github.com/dmriqc/hemicheck/gradient"
	"github.com/dmriqc/hemicheck/hemi"
)

// ErrArgumentCombination reports an invalid mix of input sources: a gradient
// table and file paths are mutually exclusive, and exactly one of the two
// must be supplied.
var ErrArgumentCombination = errors.New("qc: supply either a gradient table or bval/bvec paths")

// Input selects the gradient source for CheckHemisphere. Set Table, or set
// both BvalPath and BvecPath; anything else is ErrArgumentCombination.
type Input struct {
	Table    *gradient.Table
	BvalPath string
	BvecPath string

	// Tolerance is the unit-norm tolerance passed to hemi.Test. Zero
	// means hemi.DefaultTolerance.
	Tolerance float64

	// B0Threshold overrides the table's b0 cutoff when positive. It only
	// applies to tables loaded from paths; a prebuilt Table keeps its own.
	B0Threshold float64
}

// CheckHemisphere runs the hemisphere test on the non-b0 directions of the
// selected gradient source.
func CheckHemisphere(in Input) (hemi.Result, error) {
	tab, err := resolveTable(in)
	if err != nil {
		return hemi.Result{}, err
	}
	tol := in.Tolerance
	if tol == 0 {
		tol = hemi.DefaultTolerance
	}
	return hemi.Test(tab.DirectionVecs(), tol)
}

func resolveTable(in Input) (*gradient.Table, error) {
	hasPaths := in.BvalPath != "" || in.BvecPath != ""
	if in.Table != nil {
		if hasPaths {
			return nil, fmt.Errorf("qc: got both a table and file paths: %w", ErrArgumentCombination)
		}
		return in.Table, nil
	}
	if in.BvalPath == "" || in.BvecPath == "" {
		return nil, fmt.Errorf("qc: got no gradient source: %w", ErrArgumentCombination)
	}
	tab, err := gradient.Load(in.BvalPath, in.BvecPath)
	if err != nil {
		return nil, err
	}
	if in.B0Threshold > 0 {
		tab.B0Threshold = in.B0Threshold
	}
	return tab, nil
}
