// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

// Document is the validated, unit-normalized parameter set for one packed bed.
// All lengths are metres and all other quantities are SI.
type Document struct {
	Bed       BedGeometry `cty:"bed"`
	Lids      Lids        `cty:"lids"`
	Particles Particles   `cty:"particles"`
	Packing   Packing     `cty:"packing"`
	Export    Export      `cty:"export"`
	CFD       *CFD        `cty:"cfd"`
}

// BedGeometry describes the cylindrical container.
type BedGeometry struct {
	Diameter      float64  `cty:"diameter"`
	Height        float64  `cty:"height"`
	WallThickness float64  `cty:"wall_thickness"`
	Clearance     float64  `cty:"clearance"`
	Material      string   `cty:"material"`
	Roughness     *float64 `cty:"roughness"`
}

// Lids describes the top and bottom caps of the bed.
type Lids struct {
	TopType         string   `cty:"top_type"`
	BottomType      string   `cty:"bottom_type"`
	TopThickness    float64  `cty:"top_thickness"`
	BottomThickness float64  `cty:"bottom_thickness"`
	SealClearance   *float64 `cty:"seal_clearance"`
}

// Particles describes the packed media. Exactly one of Count and
// TargetPorosity is set on a valid document.
type Particles struct {
	Kind            string   `cty:"kind"`
	Diameter        float64  `cty:"diameter"`
	Density         float64  `cty:"density"`
	Count           *int64   `cty:"count"`
	TargetPorosity  *float64 `cty:"target_porosity"`
	Mass            *float64 `cty:"mass"`
	Restitution     float64  `cty:"restitution"`
	Friction        float64  `cty:"friction"`
	RollingFriction float64  `cty:"rolling_friction"`
	LinearDamping   float64  `cty:"linear_damping"`
	AngularDamping  float64  `cty:"angular_damping"`
	Seed            int64    `cty:"seed"`
}

// Packing holds rigid-body packing simulation parameters.
type Packing struct {
	Method          string  `cty:"method"`
	Gravity         float64 `cty:"gravity"`
	Substeps        int64   `cty:"substeps"`
	Iterations      int64   `cty:"iterations"`
	Damping         float64 `cty:"damping"`
	RestVelocity    float64 `cty:"rest_velocity"`
	MaxTime         float64 `cty:"max_time"`
	CollisionMargin float64 `cty:"collision_margin"`
}

// Export configures the geometry output of downstream generators.
type Export struct {
	Formats       []string `cty:"formats"`
	Units         string   `cty:"units"`
	Scale         float64  `cty:"scale"`
	WallMode      string   `cty:"wall_mode"`
	FluidMode     string   `cty:"fluid_mode"`
	ManifoldCheck bool     `cty:"manifold_check"`
	MergeDistance float64  `cty:"merge_distance"`
}

// CFD holds optional flow-simulation parameters.
type CFD struct {
	Regime              string  `cty:"regime"`
	InletVelocity       float64 `cty:"inlet_velocity"`
	FluidDensity        float64 `cty:"fluid_density"`
	FluidViscosity      float64 `cty:"fluid_viscosity"`
	MaxIterations       int64   `cty:"max_iterations"`
	ConvergenceCriteria float64 `cty:"convergence_criteria"`
	WriteFields         bool    `cty:"write_fields"`
}
