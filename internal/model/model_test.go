package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument_Defaults(t *testing.T) {
	doc := NewDocument()

	assert.Equal(t, "steel", doc.Bed.Material)
	assert.Zero(t, doc.Bed.Diameter, "required fields have no default")
	assert.Equal(t, "flat", doc.Lids.TopType)
	assert.Equal(t, 0.003, doc.Lids.BottomThickness)
	assert.Equal(t, int64(42), doc.Particles.Seed)
	assert.Nil(t, doc.Particles.Count)
	assert.Nil(t, doc.Particles.TargetPorosity)
	assert.Equal(t, -9.81, doc.Packing.Gravity)
	assert.Equal(t, "rigid_body", doc.Packing.Method)
	assert.True(t, doc.Export.ManifoldCheck)
	assert.Equal(t, 1e-6, doc.Export.MergeDistance)
	assert.Nil(t, doc.CFD, "cfd is absent unless the source has the section")
}

func TestClone_IsDeep(t *testing.T) {
	// Arrange
	count := int64(100)
	rough := 1e-5
	orig := NewDocument()
	orig.Particles.Count = &count
	orig.Bed.Roughness = &rough
	orig.Export.Formats = []string{"obj"}
	orig.CFD = DefaultCFD()

	// Act
	cp := orig.Clone()
	*cp.Particles.Count = 7
	*cp.Bed.Roughness = 1
	cp.Export.Formats[0] = "ply"
	cp.CFD.Regime = "turbulent_rans"

	// Assert
	require.NotSame(t, orig, cp)
	assert.Equal(t, int64(100), *orig.Particles.Count)
	assert.Equal(t, 1e-5, *orig.Bed.Roughness)
	assert.Equal(t, []string{"obj"}, orig.Export.Formats)
	assert.Equal(t, "laminar", orig.CFD.Regime)
}

func TestClone_Nil(t *testing.T) {
	var d *Document
	assert.Nil(t, d.Clone())
}
