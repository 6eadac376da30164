package validator

import "fmt"

// rule is a single-field numeric constraint.
type rule int

const (
	finite rule = iota
	positive
	nonNegative
	fraction
	openFraction
	atLeastOne
)

// rules maps field paths onto their constraint. Quantities not listed only
// need to be finite; integers not listed are unconstrained.
var rules = map[string]rule{
	"bed.diameter":       positive,
	"bed.height":         positive,
	"bed.wall_thickness": positive,
	"bed.clearance":      nonNegative,
	"bed.roughness":      nonNegative,

	"lids.top_thickness":    nonNegative,
	"lids.bottom_thickness": nonNegative,
	"lids.seal_clearance":   nonNegative,

	"particles.diameter":         positive,
	"particles.density":          positive,
	"particles.count":            atLeastOne,
	"particles.target_porosity":  openFraction,
	"particles.mass":             positive,
	"particles.restitution":      fraction,
	"particles.friction":         fraction,
	"particles.rolling_friction": fraction,
	"particles.linear_damping":   fraction,
	"particles.angular_damping":  fraction,

	"packing.substeps":         atLeastOne,
	"packing.iterations":       atLeastOne,
	"packing.damping":          nonNegative,
	"packing.rest_velocity":    nonNegative,
	"packing.max_time":         positive,
	"packing.collision_margin": nonNegative,

	"export.scale":          positive,
	"export.merge_distance": nonNegative,

	"cfd.inlet_velocity":       nonNegative,
	"cfd.fluid_density":        positive,
	"cfd.fluid_viscosity":      positive,
	"cfd.max_iterations":       atLeastOne,
	"cfd.convergence_criteria": positive,
}

// checkFloat returns a reason when f violates r, or "" when it holds.
func (r rule) checkFloat(f float64) string {
	switch r {
	case positive:
		if !(f > 0) {
			return fmt.Sprintf("must be greater than 0, got %g", f)
		}
	case nonNegative:
		if f < 0 {
			return fmt.Sprintf("must not be negative, got %g", f)
		}
	case fraction:
		if f < 0 || f > 1 {
			return fmt.Sprintf("must be between 0 and 1, got %g", f)
		}
	case openFraction:
		if !(f > 0 && f < 1) {
			return fmt.Sprintf("must be strictly between 0 and 1, got %g", f)
		}
	}
	return ""
}

// checkInt returns a reason when i violates r, or "" when it holds.
func (r rule) checkInt(i int64) string {
	if r == atLeastOne && i < 1 {
		return fmt.Sprintf("must be at least 1, got %d", i)
	}
	return ""
}
