// Package units holds the fixed SI conversion table used to normalize
// quantities written in bed source files.
package units

// Dimension is the physical dimension a unit symbol measures.
type Dimension string

const (
	Dimensionless Dimension = "dimensionless"
	Length        Dimension = "length"
	Mass          Dimension = "mass"
	Time          Dimension = "time"
	Pressure      Dimension = "pressure"
	Force         Dimension = "force"
	Velocity      Dimension = "velocity"
	Acceleration  Dimension = "acceleration"
	Density       Dimension = "density"
	Viscosity     Dimension = "dynamic viscosity"
)

// Unit is one entry of the conversion table.
type Unit struct {
	Symbol     string
	Multiplier float64
	Dimension  Dimension
}

// table is the complete set of recognized symbols. Values are multiplied by
// Multiplier to reach the SI base unit of their dimension.
var table = map[string]Unit{
	"m":     {Symbol: "m", Multiplier: 1, Dimension: Length},
	"cm":    {Symbol: "cm", Multiplier: 0.01, Dimension: Length},
	"mm":    {Symbol: "mm", Multiplier: 0.001, Dimension: Length},
	"kg":    {Symbol: "kg", Multiplier: 1, Dimension: Mass},
	"g":     {Symbol: "g", Multiplier: 0.001, Dimension: Mass},
	"s":     {Symbol: "s", Multiplier: 1, Dimension: Time},
	"Pa":    {Symbol: "Pa", Multiplier: 1, Dimension: Pressure},
	"N":     {Symbol: "N", Multiplier: 1, Dimension: Force},
	"m/s":   {Symbol: "m/s", Multiplier: 1, Dimension: Velocity},
	"kg/m3": {Symbol: "kg/m3", Multiplier: 1, Dimension: Density},
	"Pa.s":  {Symbol: "Pa.s", Multiplier: 1, Dimension: Viscosity},
	"m/s2":  {Symbol: "m/s2", Multiplier: 1, Dimension: Acceleration},
}

// Lookup returns the table entry for a symbol. The empty symbol is not in
// the table; callers treat a missing unit as multiplier 1 themselves.
func Lookup(symbol string) (Unit, bool) {
	u, ok := table[symbol]
	return u, ok
}

// IsLength reports whether symbol is a recognized length unit.
func IsLength(symbol string) bool {
	u, ok := table[symbol]
	return ok && u.Dimension == Length
}
