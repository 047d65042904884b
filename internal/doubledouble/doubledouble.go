// Package doubledouble implements double-double arithmetic: a value is held as the
// unevaluated sum of two float64, giving about 106 bits of significand.
package doubledouble

import (
	"math"
	"math/big"
	"strconv"
)

// DD is the unevaluated sum Value + Error, with |Error| ≤ ulp(Value)/2.
type DD struct {
	Value float64
	Error float64
}

// Zero and One are exact.
var (
	Zero = DD{}
	One  = DD{Value: 1}
)

// Of returns v as a double-double with no error term.
func Of(v float64) DD { return DD{Value: v} }

// OfDecimal returns v assuming the caller intended the shortest decimal representation
// of v to be exact, for example 0.3048 for the international foot. The error term is the
// difference between that decimal number and its float64 approximation.
func OfDecimal(v float64) DD {
	if v == 0 || math.IsInf(v, 0) || math.IsNaN(v) || v == math.Trunc(v) {
		return DD{Value: v}
	}
	exact, _, err := big.ParseFloat(strconv.FormatFloat(v, 'g', -1, 64), 10, 256, big.ToNearestEven)
	if err != nil {
		return DD{Value: v}
	}
	residual, _ := exact.Sub(exact, big.NewFloat(v).SetPrec(256)).Float64()
	return DD{Value: v, Error: residual}
}

// twoSum returns s = fl(a+b) and the rounding error t such that a+b = s+t exactly.
func twoSum(a, b float64) (s, t float64) {
	s = a + b
	bb := s - a
	t = (a - (s - bb)) + (b - bb)
	return s, t
}

// quickTwoSum requires |a| ≥ |b|.
func quickTwoSum(a, b float64) (s, t float64) {
	s = a + b
	t = b - (s - a)
	return s, t
}

// twoProd returns p = fl(a·b) and the rounding error e such that a·b = p+e exactly.
func twoProd(a, b float64) (p, e float64) {
	p = a * b
	e = math.FMA(a, b, -p)
	return p, e
}

// Float64 returns the nearest float64.
func (a DD) Float64() float64 { return a.Value + a.Error }

// Neg returns -a.
func (a DD) Neg() DD { return DD{Value: -a.Value, Error: -a.Error} }

// Add returns a + b.
func (a DD) Add(b DD) DD {
	s, e := twoSum(a.Value, b.Value)
	t, f := twoSum(a.Error, b.Error)
	e += t
	s, e = quickTwoSum(s, e)
	e += f
	s, e = quickTwoSum(s, e)
	return DD{Value: s, Error: e}
}

// Sub returns a - b.
func (a DD) Sub(b DD) DD { return a.Add(b.Neg()) }

// Mul returns a · b.
func (a DD) Mul(b DD) DD {
	p, e := twoProd(a.Value, b.Value)
	e += a.Value*b.Error + a.Error*b.Value
	p, e = quickTwoSum(p, e)
	return DD{Value: p, Error: e}
}

// Div returns a / b.
func (a DD) Div(b DD) DD {
	q1 := a.Value / b.Value
	r := a.Sub(b.Mul(Of(q1)))
	q2 := r.Value / b.Value
	r = r.Sub(b.Mul(Of(q2)))
	q3 := r.Value / b.Value
	q1, q2 = quickTwoSum(q1, q2)
	return DD{Value: q1, Error: q2}.Add(Of(q3))
}

// IsZero reports whether a is exactly zero.
func (a DD) IsZero() bool { return a.Value == 0 && a.Error == 0 }
