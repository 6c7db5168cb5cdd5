package gradient

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Load reads a gradient table from FSL-style bval and bvec text files.
//
// The bval file contains N whitespace-separated values, typically on a
// single line. The bvec file is either 3 rows of N columns (one row per
// axis, the common layout) or N rows of 3 columns; a 3xN layout is
// transposed on load. A 3x3 file is ambiguous and taken as 3 row vectors.
func Load(bvalPath, bvecPath string) (*Table, error) {
	bvals, err := loadBvals(bvalPath)
	if err != nil {
		return nil, err
	}
	bvecs, err := loadBvecs(bvecPath)
	if err != nil {
		return nil, err
	}
	return New(bvals, bvecs)
}

func loadBvals(path string) ([]float64, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	// All values across all lines, flattened in reading order.
	var out []float64
	for _, row := range rows {
		out = append(out, row...)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("gradient: %s contains no b-values", path)
	}
	return out, nil
}

func loadBvecs(path string) ([][]float64, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("gradient: %s contains no b-vectors", path)
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("gradient: %s row %d has %d values, want %d", path, i, len(row), width)
		}
	}
	if len(rows) == 3 && width != 3 {
		return transpose(rows), nil
	}
	if width != 3 {
		return nil, fmt.Errorf("gradient: %s has shape %dx%d, want 3xN or Nx3", path, len(rows), width)
	}
	return rows, nil
}

// readRows parses a whitespace-separated numeric text file into one float
// slice per non-empty line.
func readRows(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gradient: %w", err)
	}
	defer f.Close()

	var rows [][]float64
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("gradient: %s line %d: invalid value %q", path, line, field)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gradient: reading %s: %w", path, err)
	}
	return rows, nil
}

func transpose(rows [][]float64) [][]float64 {
	n := len(rows[0])
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, len(rows))
		for j := range rows {
			row[j] = rows[j][i]
		}
		out[i] = row
	}
	return out
}
