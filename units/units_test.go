package units_test

import (
	"testing"

	"github.com/katalvlaran/boltgroup/units"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

// TestLength_Convert checks the metric and imperial length factors.
func TestLength_Convert(t *testing.T) {
	assert.InDelta(t, 1000.0, units.Metre.Convert(1, units.Millimetre), eps, "1 m = 1000 mm")
	assert.InDelta(t, 2.54, units.Inch.Convert(1, units.Centimetre), eps, "1 in = 2.54 cm")
	assert.InDelta(t, 12.0, units.Foot.Convert(1, units.Inch), eps, "1 ft = 12 in")
	assert.InDelta(t, 5.0, units.Millimetre.Convert(5, units.Millimetre), eps, "identity conversion")
}

// TestForce_Convert checks the newton and pound-force factors.
func TestForce_Convert(t *testing.T) {
	assert.InDelta(t, 1000.0, units.Kilonewton.Convert(1, units.Newton), eps, "1 kN = 1000 N")
	assert.InDelta(t, 4.4482216152605, units.PoundForce.Convert(1, units.Newton), eps, "1 lbf in N")
	assert.InDelta(t, 1000.0, units.Kip.Convert(1, units.PoundForce), eps, "1 kip = 1000 lbf")
}

// TestParse_Symbols round-trips every supported symbol and rejects unknowns.
func TestParse_Symbols(t *testing.T) {
	for _, l := range []units.Length{units.Millimetre, units.Centimetre, units.Metre, units.Inch, units.Foot} {
		got, err := units.ParseLength(l.Symbol())
		assert.NoError(t, err, "symbol %q parses", l.Symbol())
		assert.Equal(t, l, got, "symbol %q maps back to its unit", l.Symbol())
	}
	for _, f := range []units.Force{units.Newton, units.Kilonewton, units.PoundForce, units.Kip} {
		got, err := units.ParseForce(f.Symbol())
		assert.NoError(t, err, "symbol %q parses", f.Symbol())
		assert.Equal(t, f, got, "symbol %q maps back to its unit", f.Symbol())
	}

	_, err := units.ParseLength("furlong")
	assert.ErrorIs(t, err, units.ErrUnknownUnit, "unsupported length symbol errors")
	_, err = units.ParseForce("dyn")
	assert.ErrorIs(t, err, units.ErrUnknownUnit, "unsupported force symbol errors")
}

// TestParse_CaseInsensitive accepts mixed-case symbols from case files.
func TestParse_CaseInsensitive(t *testing.T) {
	l, err := units.ParseLength("MM")
	assert.NoError(t, err)
	assert.Equal(t, units.Millimetre, l, "MM parses as millimetre")

	f, err := units.ParseForce("kN")
	assert.NoError(t, err)
	assert.Equal(t, units.Kilonewton, f, "kN parses as kilonewton")
}

// TestSystem_DerivedSymbols checks the derived moment, area and inertia
// symbols.
func TestSystem_DerivedSymbols(t *testing.T) {
	si := units.SI()
	assert.Equal(t, "N·mm", si.MomentSymbol(), "SI moment symbol")
	assert.Equal(t, "mm²", si.AreaSymbol(), "SI area symbol")
	assert.Equal(t, "mm⁴", si.InertiaSymbol(), "SI inertia symbol")

	us := units.US()
	assert.Equal(t, "lbf·in", us.MomentSymbol(), "US moment symbol")
	assert.Equal(t, "in⁴", us.InertiaSymbol(), "US inertia symbol")
}

// TestSystem_ConvertMoment checks the combined force×length factor.
func TestSystem_ConvertMoment(t *testing.T) {
	kNm := units.System{Length: units.Metre, Force: units.Kilonewton}
	// 1 kN·m = 1e6 N·mm.
	assert.InDelta(t, 1e6, kNm.ConvertMoment(1, units.SI()), eps, "kN·m to N·mm")
	// Round trip is the identity.
	assert.InDelta(t, 1.0, units.SI().ConvertMoment(kNm.ConvertMoment(1, units.SI()), kNm), eps, "round trip")
}
