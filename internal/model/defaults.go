// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

// NewDocument returns a Document with every defaulted field populated.
// Required fields are left at their zero value and CFD is nil.
func NewDocument() *Document {
	return &Document{
		Bed: BedGeometry{
			Clearance: 0,
			Material:  "steel",
		},
		Lids:      DefaultLids(),
		Particles: DefaultParticles(),
		Packing:   DefaultPacking(),
		Export:    DefaultExport(),
	}
}

// DefaultLids returns the lid settings used when the section is absent.
func DefaultLids() Lids {
	return Lids{
		TopType:         "flat",
		BottomType:      "flat",
		TopThickness:    0.003,
		BottomThickness: 0.003,
	}
}

// DefaultParticles returns the contact-model defaults. Kind, Diameter,
// Density and the sizing mode have no default.
func DefaultParticles() Particles {
	return Particles{
		Restitution:     0.5,
		Friction:        0.5,
		RollingFriction: 0.1,
		LinearDamping:   0.1,
		AngularDamping:  0.1,
		Seed:            42,
	}
}

// DefaultPacking returns the packing settings used when the section is absent.
func DefaultPacking() Packing {
	return Packing{
		Method:          "rigid_body",
		Gravity:         -9.81,
		Substeps:        10,
		Iterations:      10,
		Damping:         0.1,
		RestVelocity:    0.01,
		MaxTime:         5,
		CollisionMargin: 0.001,
	}
}

// DefaultExport returns the export defaults. Formats has no default.
func DefaultExport() Export {
	return Export{
		Units:         "m",
		Scale:         1,
		WallMode:      "surface",
		FluidMode:     "none",
		ManifoldCheck: true,
		MergeDistance: 1e-6,
	}
}

// DefaultCFD returns the values a cfd section starts from.
func DefaultCFD() *CFD {
	return &CFD{
		Regime:              "laminar",
		InletVelocity:       0.1,
		FluidDensity:        1000,
		FluidViscosity:      0.001,
		MaxIterations:       1000,
		ConvergenceCriteria: 1e-4,
		WriteFields:         true,
	}
}
