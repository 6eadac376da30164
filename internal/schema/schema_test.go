package schema

import (
	"testing"

	"github.com/specialistvlad/bedc/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSections_CanonicalOrder(t *testing.T) {
	var names []string
	for _, s := range Sections() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"bed", "lids", "particles", "packing", "export", "cfd"}, names)
}

func TestLookup(t *testing.T) {
	p, ok := Lookup("bed", "diameter")
	require.True(t, ok)
	assert.Equal(t, Quantity, p.Type)
	assert.Equal(t, units.Length, p.Dimension)
	assert.True(t, p.Required)
	assert.Equal(t, "bed.diameter", p.Path())

	p, ok = Lookup("particles", "count")
	require.True(t, ok)
	assert.Equal(t, Integer, p.Type)
	assert.False(t, p.Required, "sizing mode is checked as a cross-field invariant")

	p, ok = Lookup("lids", "top_type")
	require.True(t, ok)
	assert.Equal(t, Enum, p.Type)
	assert.Equal(t, []string{"flat", "hemispherical", "none"}, p.Values)

	_, ok = Lookup("bed", "colour")
	assert.False(t, ok)

	_, ok = Lookup("reactor", "diameter")
	assert.False(t, ok)
}

func TestRequiredSections(t *testing.T) {
	var required []string
	for _, s := range Sections() {
		if s.Required {
			required = append(required, s.Name)
		}
	}
	assert.Equal(t, []string{"bed", "particles", "export"}, required)
}

func TestReplacement(t *testing.T) {
	newName, ok := Replacement("particles", "particle_count")
	require.True(t, ok)
	assert.Equal(t, "count", newName)

	_, ok = Replacement("bed", "particle_count")
	assert.False(t, ok)
}

func TestIsSectionAndContains(t *testing.T) {
	assert.True(t, IsSection("cfd"))
	assert.False(t, IsSection("mesh"))
	assert.True(t, Contains(ParticleKinds, "cube"))
	assert.False(t, Contains(ParticleKinds, "Cube"))
}
