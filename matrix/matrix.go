// Package matrix provides the affine conversion matrices exchanged between coordinate
// systems and map projections. Elements are stored in double-double precision so that
// chains of unit conversions and (de)normalization steps do not accumulate rounding
// errors; they are read back as float64.
package matrix

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tzneal/referencing/internal/doubledouble"
)

// Errors returned by matrix operations.
var (
	ErrMismatchedSize = errors.New("mismatched matrix size")
	ErrSingular       = errors.New("matrix is singular")
)

// Matrix is a numRow×numCol matrix. Affine matrices have (0, …, 0, 1) as last row.
type Matrix struct {
	numRow, numCol int
	elements       []doubledouble.DD
}

// New returns a numRow×numCol matrix filled with zeros.
func New(numRow, numCol int) *Matrix {
	return &Matrix{
		numRow:   numRow,
		numCol:   numCol,
		elements: make([]doubledouble.DD, numRow*numCol),
	}
}

// Identity returns a size×size identity matrix.
func Identity(size int) *Matrix {
	m := New(size, size)
	for i := 0; i < size; i++ {
		m.elements[i*size+i] = doubledouble.One
	}
	return m
}

// FromRows builds a matrix from row slices, which must all have the same length.
func FromRows(rows ...[]float64) *Matrix {
	if len(rows) == 0 {
		return New(0, 0)
	}
	m := New(len(rows), len(rows[0]))
	for j, row := range rows {
		if len(row) != m.numCol {
			panic(fmt.Sprintf("matrix: row %d has %d elements, want %d", j, len(row), m.numCol))
		}
		for i, v := range row {
			m.elements[j*m.numCol+i] = doubledouble.Of(v)
		}
	}
	return m
}

// NumRow returns the number of rows.
func (m *Matrix) NumRow() int { return m.numRow }

// NumCol returns the number of columns.
func (m *Matrix) NumCol() int { return m.numCol }

// Element returns the element at the given row and column.
func (m *Matrix) Element(row, col int) float64 {
	return m.elements[row*m.numCol+col].Float64()
}

// SetElement sets the element at the given row and column.
func (m *Matrix) SetElement(row, col int, v float64) {
	m.elements[row*m.numCol+col] = doubledouble.Of(v)
}

func (m *Matrix) at(row, col int) doubledouble.DD {
	return m.elements[row*m.numCol+col]
}

func (m *Matrix) set(row, col int, v doubledouble.DD) {
	m.elements[row*m.numCol+col] = v
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{numRow: m.numRow, numCol: m.numCol, elements: make([]doubledouble.DD, len(m.elements))}
	copy(c.elements, m.elements)
	return c
}

// ScaleElement replaces the dependency of target dimension row on source dimension col,
// currently f = m[row][col], by the composition with the affine conversion
// x' = offset + scale·x applied to the source value first:
//
//	m[row][col]    = f·scale
//	m[row][numCol-1] += f·offset
//
// scale and offset are taken as exact in base 10.
func (m *Matrix) ScaleElement(row, col int, scale, offset float64) {
	last := m.numCol - 1
	factor := m.at(row, col)
	shift := m.at(row, last)
	m.set(row, col, factor.Mul(doubledouble.OfDecimal(scale)))
	m.set(row, last, factor.Mul(doubledouble.OfDecimal(offset)).Add(shift))
}

// ConvertBefore concatenates m with a conversion applied on source dimension col before m:
// x' = offset + scale·x. This is m × C where C is the identity with the given scale and
// offset in column col.
func (m *Matrix) ConvertBefore(col int, scale, offset float64) {
	m.ConvertBeforeDD(col, doubledouble.Of(scale), doubledouble.Of(offset))
}

// ConvertBeforeDD is ConvertBefore with double-double coefficients.
func (m *Matrix) ConvertBeforeDD(col int, scale, offset doubledouble.DD) {
	last := m.numCol - 1
	for j := 0; j < m.numRow; j++ {
		e := m.at(j, col)
		if e.IsZero() {
			continue
		}
		if !offset.IsZero() {
			m.set(j, last, m.at(j, last).Add(e.Mul(offset)))
		}
		m.set(j, col, e.Mul(scale))
	}
}

// ConvertAfter concatenates a conversion on target dimension row after m:
// y' = offset + scale·y.
func (m *Matrix) ConvertAfter(row int, scale, offset float64) {
	m.ConvertAfterDD(row, doubledouble.Of(scale), doubledouble.Of(offset))
}

// ConvertAfterDD is ConvertAfter with double-double coefficients.
func (m *Matrix) ConvertAfterDD(row int, scale, offset doubledouble.DD) {
	for i := 0; i < m.numCol; i++ {
		m.set(row, i, m.at(row, i).Mul(scale))
	}
	last := m.numCol - 1
	m.set(row, last, m.at(row, last).Add(offset))
}

// Multiply returns m × other.
func (m *Matrix) Multiply(other *Matrix) (*Matrix, error) {
	if m.numCol != other.numRow {
		return nil, fmt.Errorf("%w: %d×%d × %d×%d", ErrMismatchedSize, m.numRow, m.numCol, other.numRow, other.numCol)
	}
	r := New(m.numRow, other.numCol)
	for j := 0; j < m.numRow; j++ {
		for i := 0; i < other.numCol; i++ {
			sum := doubledouble.Zero
			for k := 0; k < m.numCol; k++ {
				sum = sum.Add(m.at(j, k).Mul(other.at(k, i)))
			}
			r.set(j, i, sum)
		}
	}
	return r, nil
}

// Inverse returns the inverse of a square matrix, computed by Gauss-Jordan elimination
// with partial pivoting.
func (m *Matrix) Inverse() (*Matrix, error) {
	n := m.numRow
	if n != m.numCol {
		return nil, fmt.Errorf("%w: %d×%d is not square", ErrMismatchedSize, m.numRow, m.numCol)
	}
	a := m.Clone()
	inv := Identity(n)
	for c := 0; c < n; c++ {
		pivot := c
		for j := c + 1; j < n; j++ {
			if math.Abs(a.at(j, c).Value) > math.Abs(a.at(pivot, c).Value) {
				pivot = j
			}
		}
		if a.at(pivot, c).IsZero() {
			return nil, ErrSingular
		}
		if pivot != c {
			a.swapRows(pivot, c)
			inv.swapRows(pivot, c)
		}
		p := a.at(c, c)
		for i := 0; i < n; i++ {
			a.set(c, i, a.at(c, i).Div(p))
			inv.set(c, i, inv.at(c, i).Div(p))
		}
		for j := 0; j < n; j++ {
			if j == c {
				continue
			}
			f := a.at(j, c)
			if f.IsZero() {
				continue
			}
			for i := 0; i < n; i++ {
				a.set(j, i, a.at(j, i).Sub(f.Mul(a.at(c, i))))
				inv.set(j, i, inv.at(j, i).Sub(f.Mul(inv.at(c, i))))
			}
		}
	}
	return inv, nil
}

func (m *Matrix) swapRows(a, b int) {
	for i := 0; i < m.numCol; i++ {
		ea, eb := m.at(a, i), m.at(b, i)
		m.set(a, i, eb)
		m.set(b, i, ea)
	}
}

// IsIdentity reports whether m is a square identity matrix.
func (m *Matrix) IsIdentity() bool {
	if m.numRow != m.numCol {
		return false
	}
	for j := 0; j < m.numRow; j++ {
		for i := 0; i < m.numCol; i++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if e := m.at(j, i); e.Value != want || e.Error != 0 {
				return false
			}
		}
	}
	return true
}

// IsAffine reports whether the last row is (0, …, 0, 1).
func (m *Matrix) IsAffine() bool {
	last := m.numRow - 1
	for i := 0; i < m.numCol; i++ {
		want := 0.0
		if i == m.numCol-1 {
			want = 1
		}
		if m.Element(last, i) != want {
			return false
		}
	}
	return true
}

// Equal reports whether m and other have the same size and all elements differ by no
// more than tolerance.
func (m *Matrix) Equal(other *Matrix, tolerance float64) bool {
	if m.numRow != other.numRow || m.numCol != other.numCol {
		return false
	}
	for k := range m.elements {
		a, b := m.elements[k].Float64(), other.elements[k].Float64()
		if a == b {
			continue
		}
		if !(math.Abs(a-b) <= tolerance) {
			return false
		}
	}
	return true
}

// Transform applies an affine matrix to numPts points read from src starting at srcOff
// and writes the results in dst starting at dstOff. Source points have numCol-1
// coordinates and target points numRow-1. src and dst may be the same slice only if
// the dimensions are equal and the offsets too.
func (m *Matrix) Transform(src []float64, srcOff int, dst []float64, dstOff int, numPts int) {
	srcDim := m.numCol - 1
	dstDim := m.numRow - 1
	buffer := make([]float64, dstDim)
	for p := 0; p < numPts; p++ {
		for j := 0; j < dstDim; j++ {
			sum := m.Element(j, srcDim)
			for i := 0; i < srcDim; i++ {
				e := m.Element(j, i)
				if e != 0 {
					sum += e * src[srcOff+i]
				}
			}
			buffer[j] = sum
		}
		copy(dst[dstOff:dstOff+dstDim], buffer)
		srcOff += srcDim
		dstOff += dstDim
	}
}

func (m *Matrix) String() string {
	var sb strings.Builder
	for j := 0; j < m.numRow; j++ {
		sb.WriteString("│")
		for i := 0; i < m.numCol; i++ {
			fmt.Fprintf(&sb, " %10.6g", m.Element(j, i))
		}
		sb.WriteString(" │\n")
	}
	return sb.String()
}
