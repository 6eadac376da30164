package builder

import (
	"math"
	"strconv"

	"github.com/specialistvlad/bedc/internal/ast"
	"github.com/specialistvlad/bedc/internal/schema"
	"github.com/specialistvlad/bedc/internal/units"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// quantity converts a number literal with an optional unit into an SI float.
// Scaling happens at cty's 512-bit precision so "50 mm" and "5 cm" land on
// the same float64.
func (b *builder) quantity(spec schema.Property, v ast.Value) (float64, bool) {
	if !b.expectKind(spec, v, ast.NumberValue) {
		return 0, false
	}
	n, err := cty.ParseNumberVal(v.Number)
	if err != nil {
		b.draft.issue(spec.Path(), v.Range, "invalid number %q: %s", v.Number, err)
		return 0, false
	}

	if v.HasUnit() {
		multiplier, ok := b.unitMultiplier(spec, v)
		if !ok {
			return 0, false
		}
		n = scale(n, multiplier)
	}

	f, _ := n.AsBigFloat().Float64()
	if f == 0 {
		// Collapses -0 so it serializes like 0.
		f = 0
	}
	return f, true
}

// unitMultiplier resolves the unit of v against the table and checks its
// dimension against the property. Lenient mode falls back to 1.0 for
// unknown symbols.
func (b *builder) unitMultiplier(spec schema.Property, v ast.Value) (float64, bool) {
	path := spec.Path()
	u, known := units.Lookup(v.Unit)
	if !known {
		if b.opts.StrictUnits {
			b.draft.issue(path, v.UnitRange, "unknown unit %q", v.Unit)
			return 0, false
		}
		b.draft.warn(path, v.UnitRange, "unknown unit %q, value used as-is", v.Unit)
		return 1, true
	}

	if u.Dimension != spec.Dimension {
		if b.opts.StrictUnits {
			b.draft.issue(path, v.UnitRange, "unit %q measures %s, expected %s", v.Unit, u.Dimension, spec.Dimension)
			return 0, false
		}
		b.draft.warn(path, v.UnitRange, "unit %q measures %s, expected %s", v.Unit, u.Dimension, spec.Dimension)
	}
	return u.Multiplier, true
}

func scale(n cty.Value, multiplier float64) cty.Value {
	if multiplier == 1 {
		return n
	}
	// Re-parse the decimal form so 0.001 is exact to 512 bits rather than
	// carrying float64 representation error into the product.
	m, err := cty.ParseNumberVal(strconv.FormatFloat(multiplier, 'g', -1, 64))
	if err != nil {
		m = cty.NumberFloatVal(multiplier)
	}
	return n.Multiply(m)
}

// integer converts a number literal into an int64, rejecting fractions.
func (b *builder) integer(spec schema.Property, v ast.Value) (int64, bool) {
	if !b.expectKind(spec, v, ast.NumberValue) {
		return 0, false
	}
	path := spec.Path()
	if v.HasUnit() {
		b.draft.warn(path, v.UnitRange, "unit %q is ignored on an integer property", v.Unit)
	}

	n, err := cty.ParseNumberVal(v.Number)
	if err != nil {
		b.draft.issue(path, v.Range, "invalid number %q: %s", v.Number, err)
		return 0, false
	}

	var i int64
	if err := gocty.FromCtyValue(n, &i); err != nil {
		if n.AsBigFloat().IsInt() {
			b.draft.issue(path, v.Range, "%s is a whole number outside the int64 range [%d, %d]", v.Number, math.MinInt64, math.MaxInt64)
			return 0, false
		}
		b.draft.issue(path, v.Range, "expected a whole number, found %s", v.Number)
		return 0, false
	}
	return i, true
}
