package app

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/bedc/internal/compiler"
)

// summarize describes a successful compilation on one line.
func summarize(res *compiler.Result) string {
	doc := res.Document
	var sb strings.Builder
	fmt.Fprintf(&sb, "bed %gx%g m (wall %g m, %s)", doc.Bed.Diameter, doc.Bed.Height, doc.Bed.WallThickness, doc.Bed.Material)

	fmt.Fprintf(&sb, "; %s particles d=%g m", doc.Particles.Kind, doc.Particles.Diameter)
	switch {
	case doc.Particles.Count != nil:
		fmt.Fprintf(&sb, " count=%d", *doc.Particles.Count)
	case doc.Particles.TargetPorosity != nil:
		fmt.Fprintf(&sb, " porosity=%g", *doc.Particles.TargetPorosity)
	}

	fmt.Fprintf(&sb, "; packing %s", doc.Packing.Method)
	fmt.Fprintf(&sb, "; export %s", strings.Join(doc.Export.Formats, ","))
	if doc.CFD != nil {
		fmt.Fprintf(&sb, "; cfd %s", doc.CFD.Regime)
	}
	fmt.Fprintf(&sb, "; %d warning(s)", len(res.Warnings))
	return sb.String()
}
