package units

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownUnit indicates a symbol that names no supported unit.
var ErrUnknownUnit = errors.New("units: unknown unit symbol")

// Length is a supported length unit.
type Length uint8

const (
	// Millimetre is the package base length unit.
	Millimetre Length = iota
	// Centimetre is 10 mm.
	Centimetre
	// Metre is 1000 mm.
	Metre
	// Inch is 25.4 mm.
	Inch
	// Foot is 304.8 mm.
	Foot
)

// lengthFactors holds millimetres per unit, indexed by Length.
var lengthFactors = [...]float64{1, 10, 1000, 25.4, 304.8}

// lengthSymbols holds display symbols, indexed by Length.
var lengthSymbols = [...]string{"mm", "cm", "m", "in", "ft"}

// Symbol returns the display symbol, e.g. "mm".
func (l Length) Symbol() string { return lengthSymbols[l] }

// String implements fmt.Stringer.
func (l Length) String() string { return l.Symbol() }

// Millimetres returns the number of millimetres in one unit of l.
func (l Length) Millimetres() float64 { return lengthFactors[l] }

// Convert re-expresses the magnitude v from unit l in unit to.
func (l Length) Convert(v float64, to Length) float64 {
	return v * lengthFactors[l] / lengthFactors[to]
}

// ParseLength resolves a length symbol (case-insensitive) to its unit.
func ParseLength(s string) (Length, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mm", "millimetre", "millimeter":
		return Millimetre, nil
	case "cm", "centimetre", "centimeter":
		return Centimetre, nil
	case "m", "metre", "meter":
		return Metre, nil
	case "in", "inch":
		return Inch, nil
	case "ft", "foot":
		return Foot, nil
	default:
		return Millimetre, fmt.Errorf("ParseLength(%q): %w", s, ErrUnknownUnit)
	}
}

// Force is a supported force unit.
type Force uint8

const (
	// Newton is the package base force unit.
	Newton Force = iota
	// Kilonewton is 1000 N.
	Kilonewton
	// PoundForce is 4.4482216152605 N.
	PoundForce
	// Kip is 1000 lbf.
	Kip
)

// forceFactors holds newtons per unit, indexed by Force.
var forceFactors = [...]float64{1, 1000, 4.4482216152605, 4448.2216152605}

// forceSymbols holds display symbols, indexed by Force.
var forceSymbols = [...]string{"N", "kN", "lbf", "kip"}

// Symbol returns the display symbol, e.g. "kN".
func (f Force) Symbol() string { return forceSymbols[f] }

// String implements fmt.Stringer.
func (f Force) String() string { return f.Symbol() }

// Newtons returns the number of newtons in one unit of f.
func (f Force) Newtons() float64 { return forceFactors[f] }

// Convert re-expresses the magnitude v from unit f in unit to.
func (f Force) Convert(v float64, to Force) float64 {
	return v * forceFactors[f] / forceFactors[to]
}

// ParseForce resolves a force symbol (case-insensitive) to its unit.
func ParseForce(s string) (Force, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "newton":
		return Newton, nil
	case "kn", "kilonewton":
		return Kilonewton, nil
	case "lbf", "pound", "pound-force":
		return PoundForce, nil
	case "kip", "kips":
		return Kip, nil
	default:
		return Newton, fmt.Errorf("ParseForce(%q): %w", s, ErrUnknownUnit)
	}
}

// System pairs the length and force units an analysis is expressed in.
// Moments are implicitly expressed in Force·Length.
type System struct {
	Length Length
	Force  Force
}

// SI returns the default system: millimetre and newton.
func SI() System { return System{Length: Millimetre, Force: Newton} }

// US returns the customary system: inch and pound-force.
func US() System { return System{Length: Inch, Force: PoundForce} }

// Parse resolves a pair of length/force symbols to a System.
func Parse(length, force string) (System, error) {
	l, err := ParseLength(length)
	if err != nil {
		return System{}, err
	}
	f, err := ParseForce(force)
	if err != nil {
		return System{}, err
	}

	return System{Length: l, Force: f}, nil
}

// MomentSymbol returns the derived moment symbol, e.g. "N·mm".
func (s System) MomentSymbol() string {
	return s.Force.Symbol() + "·" + s.Length.Symbol()
}

// AreaSymbol returns the derived area symbol, e.g. "mm²".
func (s System) AreaSymbol() string {
	return s.Length.Symbol() + "²"
}

// InertiaSymbol returns the derived second-moment-of-area symbol,
// e.g. "mm⁴".
func (s System) InertiaSymbol() string {
	return s.Length.Symbol() + "⁴"
}

// String implements fmt.Stringer, e.g. "mm/N".
func (s System) String() string {
	return s.Length.Symbol() + "/" + s.Force.Symbol()
}

// ConvertLength re-expresses a length magnitude from system s in system to.
func (s System) ConvertLength(v float64, to System) float64 {
	return s.Length.Convert(v, to.Length)
}

// ConvertForce re-expresses a force magnitude from system s in system to.
func (s System) ConvertForce(v float64, to System) float64 {
	return s.Force.Convert(v, to.Force)
}

// ConvertMoment re-expresses a moment magnitude from system s in system to.
func (s System) ConvertMoment(v float64, to System) float64 {
	return v * (s.Force.Newtons() * s.Length.Millimetres()) /
		(to.Force.Newtons() * to.Length.Millimetres())
}
