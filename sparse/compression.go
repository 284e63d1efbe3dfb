// SPDX-License-Identifier: MIT

package sparse

// Compression maps between (row, col) coordinates and the (major, minor)
// coordinates of a compressed layout. It is selected once, as the type
// parameter C of CsMatrix[T, C]; the two implementations are zero-size
// structs, so the choice costs nothing at runtime.
//
// The set is sealed: only RowMajor and ColMajor satisfy it.
type Compression interface {
	// Major returns the lane index of (row, col).
	Major(row, col int) int
	// Minor returns the position of (row, col) within its lane.
	Minor(row, col int) int
	// NMajor returns the number of lanes for a rows×cols matrix.
	NMajor(rows, cols int) int
	// NMinor returns the lane length for a rows×cols matrix.
	NMinor(rows, cols int) int
	// RowCol is the inverse mapping: (major, minor) back to (row, col).
	RowCol(major, minor int) (row, col int)
	// Name is "CSR" or "CSC".
	Name() string

	sealed()
}

// RowMajor compresses rows: major = row, minor = col (CSR).
type RowMajor struct{}

// ColMajor compresses columns: major = col, minor = row (CSC).
type ColMajor struct{}

var (
	_ Compression = RowMajor{}
	_ Compression = ColMajor{}
)

func (RowMajor) Major(row, _ int) int { return row }
func (RowMajor) Minor(_, col int) int { return col }
func (RowMajor) NMajor(rows, _ int) int { return rows }
func (RowMajor) NMinor(_, cols int) int { return cols }
func (RowMajor) RowCol(major, minor int) (int, int) { return major, minor }
func (RowMajor) Name() string { return "CSR" }
func (RowMajor) sealed() {}

func (ColMajor) Major(_, col int) int { return col }
func (ColMajor) Minor(row, _ int) int { return row }
func (ColMajor) NMajor(_, cols int) int { return cols }
func (ColMajor) NMinor(rows, _ int) int { return rows }
func (ColMajor) RowCol(major, minor int) (int, int) { return minor, major }
func (ColMajor) Name() string { return "CSC" }
func (ColMajor) sealed() {}

// strategy returns the zero value of C, the receiver for its mapping methods.
func strategy[C Compression]() C {
	var c C
	return c
}

// sameCompression reports whether CL and CR are the same orientation.
func sameCompression[CL, CR Compression]() bool {
	return any(strategy[CL]()) == any(strategy[CR]())
}
