package schema

import (
	"github.com/specialistvlad/bedc/internal/units"
)

// Type is the semantic type a property value is coerced to.
type Type int

const (
	Quantity Type = iota + 1
	Enum
	Integer
	Bool
	String
	StringList
)

func (t Type) String() string {
	switch t {
	case Quantity:
		return "quantity"
	case Enum:
		return "enum"
	case Integer:
		return "integer"
	case Bool:
		return "boolean"
	case String:
		return "string"
	case StringList:
		return "list of strings"
	default:
		return "unknown"
	}
}

// Section names.
const (
	Bed       = "bed"
	Lids      = "lids"
	Particles = "particles"
	Packing   = "packing"
	Export    = "export"
	CFD       = "cfd"
)

// Property describes one `name = value;` slot of a section.
type Property struct {
	Section   string
	Name      string
	Type      Type
	Dimension units.Dimension // Quantity only
	Values    []string        // Enum only, the closed vocabulary
	Required  bool
}

// Path is the dotted field path used in diagnostics, e.g. "bed.diameter".
func (p Property) Path() string {
	return p.Section + "." + p.Name
}

// Section describes a top-level block.
type Section struct {
	Name       string
	Required   bool
	Properties []Property
}

// Property returns the named property of the section.
func (s *Section) Property(name string) (Property, bool) {
	for _, p := range s.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

func quantity(section, name string, dim units.Dimension) Property {
	return Property{Section: section, Name: name, Type: Quantity, Dimension: dim}
}

func required(p Property) Property {
	p.Required = true
	return p
}

func enum(section, name string, values ...string) Property {
	return Property{Section: section, Name: name, Type: Enum, Values: values}
}

func typed(section, name string, t Type) Property {
	return Property{Section: section, Name: name, Type: t}
}

// Enum vocabularies.
var (
	LidTypes      = []string{"flat", "hemispherical", "none"}
	ParticleKinds = []string{"sphere", "cube", "cylinder"}
	PackingMethod = []string{"rigid_body"}
	WallModes     = []string{"surface", "solid"}
	FluidModes    = []string{"none", "cavity"}
	CFDRegimes    = []string{"laminar", "turbulent_rans"}
)

// KnownExportFormats are the identifiers downstream generators understand.
// Other identifiers are accepted with a warning.
var KnownExportFormats = []string{"stl_binary", "stl_ascii", "obj", "ply", "glb", "blend"}

// sections lists every recognized block in canonical order.
var sections = []*Section{
	{
		Name:     Bed,
		Required: true,
		Properties: []Property{
			required(quantity(Bed, "diameter", units.Length)),
			required(quantity(Bed, "height", units.Length)),
			required(quantity(Bed, "wall_thickness", units.Length)),
			quantity(Bed, "clearance", units.Length),
			typed(Bed, "material", String),
			quantity(Bed, "roughness", units.Length),
		},
	},
	{
		Name: Lids,
		Properties: []Property{
			enum(Lids, "top_type", LidTypes...),
			enum(Lids, "bottom_type", LidTypes...),
			quantity(Lids, "top_thickness", units.Length),
			quantity(Lids, "bottom_thickness", units.Length),
			quantity(Lids, "seal_clearance", units.Length),
		},
	},
	{
		Name:     Particles,
		Required: true,
		Properties: []Property{
			required(enum(Particles, "kind", ParticleKinds...)),
			required(quantity(Particles, "diameter", units.Length)),
			required(quantity(Particles, "density", units.Density)),
			typed(Particles, "count", Integer),
			quantity(Particles, "target_porosity", units.Dimensionless),
			quantity(Particles, "mass", units.Mass),
			quantity(Particles, "restitution", units.Dimensionless),
			quantity(Particles, "friction", units.Dimensionless),
			quantity(Particles, "rolling_friction", units.Dimensionless),
			quantity(Particles, "linear_damping", units.Dimensionless),
			quantity(Particles, "angular_damping", units.Dimensionless),
			typed(Particles, "seed", Integer),
		},
	},
	{
		Name: Packing,
		Properties: []Property{
			enum(Packing, "method", PackingMethod...),
			quantity(Packing, "gravity", units.Acceleration),
			typed(Packing, "substeps", Integer),
			typed(Packing, "iterations", Integer),
			quantity(Packing, "damping", units.Dimensionless),
			quantity(Packing, "rest_velocity", units.Velocity),
			quantity(Packing, "max_time", units.Time),
			quantity(Packing, "collision_margin", units.Length),
		},
	},
	{
		Name:     Export,
		Required: true,
		Properties: []Property{
			required(typed(Export, "formats", StringList)),
			typed(Export, "units", String),
			quantity(Export, "scale", units.Dimensionless),
			enum(Export, "wall_mode", WallModes...),
			enum(Export, "fluid_mode", FluidModes...),
			typed(Export, "manifold_check", Bool),
			quantity(Export, "merge_distance", units.Length),
		},
	},
	{
		Name: CFD,
		Properties: []Property{
			enum(CFD, "regime", CFDRegimes...),
			quantity(CFD, "inlet_velocity", units.Velocity),
			quantity(CFD, "fluid_density", units.Density),
			quantity(CFD, "fluid_viscosity", units.Viscosity),
			typed(CFD, "max_iterations", Integer),
			quantity(CFD, "convergence_criteria", units.Dimensionless),
			typed(CFD, "write_fields", Bool),
		},
	},
}

// deprecated maps old property names onto their replacements, per section.
var deprecated = map[string]map[string]string{
	Particles: {
		"particle_count": "count",
		"porosity":       "target_porosity",
	},
}

// Sections returns the recognized sections in canonical order.
func Sections() []*Section {
	return sections
}

// LookupSection returns the schema for a section name.
func LookupSection(name string) (*Section, bool) {
	for _, s := range sections {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// IsSection reports whether name is a recognized top-level section.
func IsSection(name string) bool {
	_, ok := LookupSection(name)
	return ok
}

// Lookup returns the schema for a (section, property) pair.
func Lookup(section, name string) (Property, bool) {
	s, ok := LookupSection(section)
	if !ok {
		return Property{}, false
	}
	return s.Property(name)
}

// Replacement returns the current name of a deprecated property.
func Replacement(section, name string) (string, bool) {
	newName, ok := deprecated[section][name]
	return newName, ok
}

// Contains reports whether value is a member of vocabulary.
func Contains(vocabulary []string, value string) bool {
	for _, v := range vocabulary {
		if v == value {
			return true
		}
	}
	return false
}
