// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

// Field returns a pointer to the field addressed by a dotted path such as
// "bed.diameter". The concrete type depends on the field: *float64,
// **float64 (optional quantity), *int64, **int64 (optional integer),
// *string, *bool or *[]string. It returns nil for unknown paths and for cfd
// paths while the CFD section is absent.
func (d *Document) Field(path string) any {
	switch path {
	case "bed.diameter":
		return &d.Bed.Diameter
	case "bed.height":
		return &d.Bed.Height
	case "bed.wall_thickness":
		return &d.Bed.WallThickness
	case "bed.clearance":
		return &d.Bed.Clearance
	case "bed.material":
		return &d.Bed.Material
	case "bed.roughness":
		return &d.Bed.Roughness

	case "lids.top_type":
		return &d.Lids.TopType
	case "lids.bottom_type":
		return &d.Lids.BottomType
	case "lids.top_thickness":
		return &d.Lids.TopThickness
	case "lids.bottom_thickness":
		return &d.Lids.BottomThickness
	case "lids.seal_clearance":
		return &d.Lids.SealClearance

	case "particles.kind":
		return &d.Particles.Kind
	case "particles.diameter":
		return &d.Particles.Diameter
	case "particles.density":
		return &d.Particles.Density
	case "particles.count":
		return &d.Particles.Count
	case "particles.target_porosity":
		return &d.Particles.TargetPorosity
	case "particles.mass":
		return &d.Particles.Mass
	case "particles.restitution":
		return &d.Particles.Restitution
	case "particles.friction":
		return &d.Particles.Friction
	case "particles.rolling_friction":
		return &d.Particles.RollingFriction
	case "particles.linear_damping":
		return &d.Particles.LinearDamping
	case "particles.angular_damping":
		return &d.Particles.AngularDamping
	case "particles.seed":
		return &d.Particles.Seed

	case "packing.method":
		return &d.Packing.Method
	case "packing.gravity":
		return &d.Packing.Gravity
	case "packing.substeps":
		return &d.Packing.Substeps
	case "packing.iterations":
		return &d.Packing.Iterations
	case "packing.damping":
		return &d.Packing.Damping
	case "packing.rest_velocity":
		return &d.Packing.RestVelocity
	case "packing.max_time":
		return &d.Packing.MaxTime
	case "packing.collision_margin":
		return &d.Packing.CollisionMargin

	case "export.formats":
		return &d.Export.Formats
	case "export.units":
		return &d.Export.Units
	case "export.scale":
		return &d.Export.Scale
	case "export.wall_mode":
		return &d.Export.WallMode
	case "export.fluid_mode":
		return &d.Export.FluidMode
	case "export.manifold_check":
		return &d.Export.ManifoldCheck
	case "export.merge_distance":
		return &d.Export.MergeDistance
	}

	if d.CFD == nil {
		return nil
	}
	switch path {
	case "cfd.regime":
		return &d.CFD.Regime
	case "cfd.inlet_velocity":
		return &d.CFD.InletVelocity
	case "cfd.fluid_density":
		return &d.CFD.FluidDensity
	case "cfd.fluid_viscosity":
		return &d.CFD.FluidViscosity
	case "cfd.max_iterations":
		return &d.CFD.MaxIterations
	case "cfd.convergence_criteria":
		return &d.CFD.ConvergenceCriteria
	case "cfd.write_fields":
		return &d.CFD.WriteFields
	}
	return nil
}
