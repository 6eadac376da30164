// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := *d
	out.Bed.Roughness = clonePtr(d.Bed.Roughness)
	out.Lids.SealClearance = clonePtr(d.Lids.SealClearance)
	out.Particles.Count = clonePtr(d.Particles.Count)
	out.Particles.TargetPorosity = clonePtr(d.Particles.TargetPorosity)
	out.Particles.Mass = clonePtr(d.Particles.Mass)
	if d.Export.Formats != nil {
		out.Export.Formats = append([]string(nil), d.Export.Formats...)
	}
	if d.CFD != nil {
		cfd := *d.CFD
		out.CFD = &cfd
	}
	return &out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
