// Package units provides the units of measurement carried by coordinate system
// axes and the converters between units of the same kind.
package units

import (
	"errors"
	"fmt"
	"math"
)

// ErrIncommensurable is returned when converting between units of different kinds.
var ErrIncommensurable = errors.New("incommensurable units")

// Kind is the physical quantity measured by a unit.
type Kind uint8

// Kind constants
const (
	KindOther Kind = iota
	KindLinear
	KindAngular
	KindTemporal
	KindScale
	KindTemperature
	KindPressure
)

func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindAngular:
		return "angular"
	case KindTemporal:
		return "temporal"
	case KindScale:
		return "scale"
	case KindTemperature:
		return "temperature"
	case KindPressure:
		return "pressure"
	}
	return "other"
}

// Unit is a unit of measurement. Units are plain values and can be compared with ==.
//
// The scale is the factor from this unit to the reference unit of its kind: metre,
// degree, second, unity, kelvin or pascal. Angles use the degree rather than the
// radian as reference so that conversions between sexagesimal units stay exact.
type Unit struct {
	symbol string
	kind   Kind
	scale  float64
	offset float64
	log    bool // values are 10·log₁₀ of the reference quantity
}

// Predefined units.
var (
	Metre        = Unit{symbol: "m", kind: KindLinear, scale: 1}
	Kilometre    = Unit{symbol: "km", kind: KindLinear, scale: 1000}
	Centimetre   = Unit{symbol: "cm", kind: KindLinear, scale: 0.01}
	Millimetre   = Unit{symbol: "mm", kind: KindLinear, scale: 0.001}
	Foot         = Unit{symbol: "ft", kind: KindLinear, scale: 0.3048}
	USSurveyFoot = Unit{symbol: "ftUS", kind: KindLinear, scale: 1200.0 / 3937}

	Degree      = Unit{symbol: "°", kind: KindAngular, scale: 1}
	Radian      = Unit{symbol: "rad", kind: KindAngular, scale: 180 / math.Pi}
	Grad        = Unit{symbol: "grad", kind: KindAngular, scale: 0.9}
	ArcMinute   = Unit{symbol: "′", kind: KindAngular, scale: 1.0 / 60}
	ArcSecond   = Unit{symbol: "″", kind: KindAngular, scale: 1.0 / 3600}
	Microradian = Unit{symbol: "µrad", kind: KindAngular, scale: 180e-6 / math.Pi}

	Second = Unit{symbol: "s", kind: KindTemporal, scale: 1}
	Minute = Unit{symbol: "min", kind: KindTemporal, scale: 60}
	Hour   = Unit{symbol: "h", kind: KindTemporal, scale: 3600}
	Day    = Unit{symbol: "d", kind: KindTemporal, scale: 86400}
	Year   = Unit{symbol: "a", kind: KindTemporal, scale: 365.25 * 86400}

	Unity   = Unit{symbol: "", kind: KindScale, scale: 1}
	PPM     = Unit{symbol: "ppm", kind: KindScale, scale: 1e-6}
	Decibel = Unit{symbol: "dB", kind: KindScale, scale: 1, log: true}

	Kelvin  = Unit{symbol: "K", kind: KindTemperature, scale: 1}
	Celsius = Unit{symbol: "℃", kind: KindTemperature, scale: 1, offset: 273.15}

	Pascal      = Unit{symbol: "Pa", kind: KindPressure, scale: 1}
	Hectopascal = Unit{symbol: "hPa", kind: KindPressure, scale: 100}
)

// Scaled returns a new unit of the same kind as base, equal to factor times base.
func Scaled(symbol string, base Unit, factor float64) Unit {
	return Unit{symbol: symbol, kind: base.kind, scale: base.scale * factor, offset: base.offset, log: base.log}
}

// Symbol returns the unit symbol, or an empty string for unity.
func (u Unit) Symbol() string { return u.symbol }

// Kind returns the quantity measured by this unit.
func (u Unit) Kind() Kind { return u.kind }

func (u Unit) String() string { return u.symbol }

// IsZero reports whether u is the zero Unit (no unit specified).
func (u Unit) IsZero() bool { return u == (Unit{}) }

// IsLinear reports whether u is a unit of length.
func IsLinear(u Unit) bool { return u.kind == KindLinear }

// IsAngular reports whether u is a unit of angle.
func IsAngular(u Unit) bool { return u.kind == KindAngular }

// IsTemporal reports whether u is a unit of time.
func IsTemporal(u Unit) bool { return u.kind == KindTemporal }

// IsScale reports whether u is dimensionless.
func IsScale(u Unit) bool { return u.kind == KindScale }

// ConverterTo returns the converter from u to target.
func (u Unit) ConverterTo(target Unit) (Converter, error) {
	if u.kind != target.kind {
		return nil, fmt.Errorf("%w: %q (%s) to %q (%s)", ErrIncommensurable, u.symbol, u.kind, target.symbol, target.kind)
	}
	if u == target {
		return identity, nil
	}
	if u.log || target.log {
		return logConverter{from: u, to: target}, nil
	}
	return affineConverter{
		scale:  u.scale / target.scale,
		offset: (u.offset - target.offset) / target.scale,
	}, nil
}

// Converter converts values from one unit to another.
type Converter interface {
	Convert(v float64) float64
	Inverse() Converter

	// Coefficients returns the offset and scale of an affine conversion
	// y = offset + scale·x. The last value is false when the conversion
	// is not affine, in which case offset and scale are meaningless.
	Coefficients() (offset, scale float64, affine bool)
	IsIdentity() bool
}

var identity = affineConverter{scale: 1}

type affineConverter struct {
	scale, offset float64
}

func (c affineConverter) Convert(v float64) float64 { return v*c.scale + c.offset }

func (c affineConverter) Inverse() Converter {
	return affineConverter{scale: 1 / c.scale, offset: -c.offset / c.scale}
}

func (c affineConverter) Coefficients() (float64, float64, bool) { return c.offset, c.scale, true }

func (c affineConverter) IsIdentity() bool { return c.scale == 1 && c.offset == 0 }

type logConverter struct {
	from, to Unit
}

func toReference(u Unit, v float64) float64 {
	if u.log {
		v = math.Pow(10, v/10)
	}
	return v*u.scale + u.offset
}

func fromReference(u Unit, v float64) float64 {
	v = (v - u.offset) / u.scale
	if u.log {
		v = 10 * math.Log10(v)
	}
	return v
}

func (c logConverter) Convert(v float64) float64 { return fromReference(c.to, toReference(c.from, v)) }

func (c logConverter) Inverse() Converter { return logConverter{from: c.to, to: c.from} }

func (c logConverter) Coefficients() (float64, float64, bool) { return 0, 1, false }

func (c logConverter) IsIdentity() bool { return false }
